package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	// GetByRequestIDForUpdate locks the request row for the duration of the
	// surrounding transaction so concurrent processors serialize on it.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	ListByStatus(ctx context.Context, s Status) ([]LoanRequest, error)
	ListByCustomerAndStatus(ctx context.Context, customerID string, s Status) ([]LoanRequest, error)
	ListAll(ctx context.Context) ([]LoanRequest, error)
	Save(ctx context.Context, r *LoanRequest) error
}
