package service

import (
	"context"
	"time"

	"github.com/examportal/backend/internal/model"
)

// Store interfaces kept narrow so handlers and tests can swap in fakes.
// *db.Postgres satisfies all of them.

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
}

type TokenStore interface {
	InsertRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, tokenID int64) error
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
}

type ExamStore interface {
	ListExams(ctx context.Context) ([]model.Exam, error)
	CreateExam(ctx context.Context, name, slug string) (*model.Exam, error)
}
