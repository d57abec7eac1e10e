package db

import (
	"context"

	"github.com/examportal/backend/internal/model"
)

func (db *Postgres) ListExams(ctx context.Context) ([]model.Exam, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM exams
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var exam model.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.Name,
			&exam.Slug,
			&exam.CreatedAt,
			&exam.UpdatedAt,
		); err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

func (db *Postgres) CreateExam(ctx context.Context, name, slug string) (*model.Exam, error) {
	query := `
		INSERT INTO exams (name, slug, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, slug, created_at, updated_at
	`
	var exam model.Exam
	err := db.Pool.QueryRow(ctx, query, name, slug).Scan(
		&exam.ID,
		&exam.Name,
		&exam.Slug,
		&exam.CreatedAt,
		&exam.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &exam, nil
}
