package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/examportal/backend/internal/db"
	"github.com/examportal/backend/internal/model"
)

// maxSlugAttempts bounds the disambiguation loop when several exams share
// a name.
const maxSlugAttempts = 10

type ExamService struct {
	store ExamStore
}

func NewExamService(store ExamStore) *ExamService {
	return &ExamService{store: store}
}

// List returns every exam. An empty table is reported as not found rather
// than an empty list; existing clients depend on that.
func (s *ExamService) List(ctx context.Context) ([]model.Exam, error) {
	exams, err := s.store.ListExams(ctx)
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Fetching exams failed, please try again later.", err)
	}
	if len(exams) == 0 {
		return nil, model.NewHTTPError(http.StatusNotFound, "Could not find exams.")
	}
	return exams, nil
}

// Create inserts an exam under a slug derived from its name. When the slug
// is already taken the insert is retried with a numeric suffix: "midterm",
// "midterm-2", "midterm-3", ...
func (s *ExamService) Create(ctx context.Context, name string) (*model.Exam, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewHTTPError(http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.")
	}

	base := Slugify(name)
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug := base
		if attempt > 1 {
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		exam, err := s.store.CreateExam(ctx, name, slug)
		if err != nil {
			if db.IsUniqueViolation(err) {
				continue
			}
			return nil, model.WrapHTTPError(http.StatusInternalServerError,
				"Create exam failed, please try again later.", err)
		}
		return exam, nil
	}

	return nil, model.NewHTTPError(http.StatusUnprocessableEntity,
		"Exam exists already, please choose another name.")
}

// Slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single dash. A name with no usable characters at all
// falls back to a random identifier.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "exam-" + uuid.NewString()[:8]
	}
	return slug
}
