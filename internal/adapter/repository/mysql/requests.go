package mysql

import (
	"context"

	requestDomain "loandesk-backend/internal/domain/request"

	"gorm.io/gorm"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *RequestRepository) Save(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := forUpdate(r.db.WithContext(ctx)).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) ListByStatus(ctx context.Context, s requestDomain.Status) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("applied_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListByCustomerAndStatus(ctx context.Context, customerID string, s requestDomain.Status) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, s).
		Order("applied_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListAll(ctx context.Context) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
