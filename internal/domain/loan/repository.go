package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
