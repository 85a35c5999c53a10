package uowmock

import (
	"context"
	"errors"

	"loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequestTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, lr *request.LoanRequest) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, lr *request.LoanRequest) error) error {
	if m.WithinRequestTxFn != nil {
		return m.WithinRequestTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
