package usermock

import (
	"context"

	domain "loandesk-backend/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository. Fill in the
// function fields a test needs; unfilled getters report record-not-found.
type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*domain.User, error)
	ListFn                 func(ctx context.Context) ([]domain.User, error)
	SaveFn                 func(ctx context.Context, u *domain.User) error
	DeleteFn               func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}
