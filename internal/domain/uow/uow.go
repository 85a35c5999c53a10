package uow

import (
	"context"

	"loandesk-backend/internal/domain/loan"
	"loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Requests request.Repository
	Loans    loan.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one database transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinRequestTx locks the loan-request row first, then passes it in.
	// Concurrent processors of the same request serialize on that lock.
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, lr *request.LoanRequest) error) error
}
