package mysql

import (
	"context"

	requestDomain "loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:    &UserRepository{db: tx},
		Requests: &RequestRepository{db: tx},
		Loans:    &LoanRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, lr *requestDomain.LoanRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the request row up-front so concurrent processors serialize
		lr, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, lr)
	})
}
