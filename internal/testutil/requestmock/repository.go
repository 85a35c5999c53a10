package requestmock

import (
	"context"

	domain "loandesk-backend/internal/domain/request"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies request.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, lr *domain.LoanRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	ListByStatusFn            func(ctx context.Context, s domain.Status) ([]domain.LoanRequest, error)
	ListByCustomerAndStatusFn func(ctx context.Context, customerID string, s domain.Status) ([]domain.LoanRequest, error)
	ListAllFn                 func(ctx context.Context) ([]domain.LoanRequest, error)
	SaveFn                    func(ctx context.Context, lr *domain.LoanRequest) error
}

func (m *Repo) Create(ctx context.Context, lr *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lr)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.LoanRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListByCustomerAndStatus(ctx context.Context, customerID string, s domain.Status) ([]domain.LoanRequest, error) {
	if m.ListByCustomerAndStatusFn != nil {
		return m.ListByCustomerAndStatusFn(ctx, customerID, s)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LoanRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, lr *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, lr)
	}
	return nil
}
