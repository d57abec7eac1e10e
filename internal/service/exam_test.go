package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/examportal/backend/internal/model"
)

type fakeExamStore struct {
	exams  []model.Exam
	nextID int64
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{nextID: 1}
}

func (s *fakeExamStore) ListExams(_ context.Context) ([]model.Exam, error) {
	return s.exams, nil
}

func (s *fakeExamStore) CreateExam(_ context.Context, name, slug string) (*model.Exam, error) {
	for _, exam := range s.exams {
		if exam.Slug == slug {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	exam := model.Exam{
		ID:        s.nextID,
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.nextID++
	s.exams = append(s.exams, exam)
	return &exam, nil
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Midterm", "midterm"},
		{"Final Exam 2026", "final-exam-2026"},
		{"  Algebra II  ", "algebra-ii"},
		{"C++ Basics!", "c-basics"},
		{"MiXeD CaSe", "mixed-case"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlugifyUnusableName(t *testing.T) {
	got := Slugify("!!!")
	if !strings.HasPrefix(got, "exam-") || len(got) <= len("exam-") {
		t.Fatalf("expected random fallback slug, got %q", got)
	}
}

func TestListExamsEmptyIsNotFound(t *testing.T) {
	svc := NewExamService(newFakeExamStore())
	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatalf("expected an error for empty exam list")
	}
	if code := httpErrorCode(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestCreateAndListExams(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	exam, err := svc.Create(context.Background(), "Midterm")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if exam.Slug != "midterm" {
		t.Fatalf("slug %q, want %q", exam.Slug, "midterm")
	}

	exams, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exams) != 1 || exams[0].Name != "Midterm" {
		t.Fatalf("unexpected exam list: %+v", exams)
	}
}

func TestCreateExamDisambiguatesSlug(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	first, err := svc.Create(context.Background(), "Midterm")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(context.Background(), "Midterm")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if first.Slug != "midterm" || second.Slug != "midterm-2" {
		t.Fatalf("slugs %q and %q, want %q and %q", first.Slug, second.Slug, "midterm", "midterm-2")
	}

	third, err := svc.Create(context.Background(), "Midterm")
	if err != nil {
		t.Fatalf("third create: %v", err)
	}
	if third.Slug != "midterm-3" {
		t.Fatalf("slug %q, want %q", third.Slug, "midterm-3")
	}
}

func TestCreateExamRejectsEmptyName(t *testing.T) {
	svc := NewExamService(newFakeExamStore())
	_, err := svc.Create(context.Background(), "   ")
	if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}
