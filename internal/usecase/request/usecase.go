package request

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/user"
	"loandesk-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid loan request input")

type Usecase struct {
	requests request.Repository
	users    user.Repository
}

func NewUsecase(requests request.Repository, users user.Repository) *Usecase {
	return &Usecase{requests: requests, users: users}
}

type SubmitInput struct {
	CustomerID string
	Amount     decimal.Decimal
	TermMonths int
}

type RequestDTO struct {
	RequestID           string          `json:"request_id"`
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email"`
	Amount              decimal.Decimal `json:"amount"`
	TermMonths          int             `json:"term_months"`
	Status              string          `json:"status"`
	AppliedDate         time.Time       `json:"applied_date"`
	ProcessedByBankerID string          `json:"processed_by_banker_id,omitempty"`
}

func toDTO(lr *request.LoanRequest) RequestDTO {
	return RequestDTO{
		RequestID:           lr.RequestID,
		CustomerID:          lr.CustomerID,
		CustomerName:        lr.CustomerName,
		CustomerEmail:       lr.CustomerEmail,
		Amount:              lr.Amount,
		TermMonths:          lr.TermMonths,
		Status:              string(lr.Status),
		AppliedDate:         lr.AppliedDate,
		ProcessedByBankerID: lr.ProcessedByBankerID,
	}
}

func toDTOs(rows []request.LoanRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out
}

// Submit files a new pending request on behalf of the authenticated customer.
// Name and email are denormalized from the customer row at submission time.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RequestDTO, error) {
	if !in.Amount.IsPositive() || in.TermMonths <= 0 {
		return nil, ErrInvalidInput
	}

	cust, err := u.users.GetByUserID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	lr := &request.LoanRequest{
		RequestID:     id.NewID32(),
		CustomerID:    cust.UserID,
		CustomerName:  cust.Name,
		CustomerEmail: cust.Email,
		Amount:        in.Amount,
		TermMonths:    in.TermMonths,
		Status:        request.StatusPending,
		AppliedDate:   time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := u.requests.Create(ctx, lr); err != nil {
		return nil, err
	}

	dto := toDTO(lr)
	return &dto, nil
}

// ListPending returns the banker work queue.
func (u *Usecase) ListPending(ctx context.Context) ([]RequestDTO, error) {
	rows, err := u.requests.ListByStatus(ctx, request.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListCustomerPending returns the calling customer's own pending requests.
func (u *Usecase) ListCustomerPending(ctx context.Context, customerID string) ([]RequestDTO, error) {
	rows, err := u.requests.ListByCustomerAndStatus(ctx, customerID, request.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListAll returns every request regardless of status (admin view).
func (u *Usecase) ListAll(ctx context.Context) ([]RequestDTO, error) {
	rows, err := u.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}
