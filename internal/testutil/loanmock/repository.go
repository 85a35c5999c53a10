package loanmock

import (
	"context"

	domain "loandesk-backend/internal/domain/loan"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn      func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListAllFn          func(ctx context.Context) ([]domain.Loan, error)
	ListByCustomerIDFn func(ctx context.Context, customerID string) ([]domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
