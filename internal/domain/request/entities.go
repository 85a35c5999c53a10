package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("loan request not found")
	ErrAlreadyProcessed = errors.New("loan request already processed")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the request has been processed. A terminal row is
// immutable.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// LoanRequest carries denormalized customer name/email so listing screens
// need no join.
type LoanRequest struct {
	ID                  uint64          `gorm:"primaryKey;column:id" json:"-"`
	RequestID           string          `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	CustomerID          string          `gorm:"size:32;index:idx_loan_requests_customer" json:"customer_id"`
	CustomerName        string          `gorm:"size:120" json:"customer_name"`
	CustomerEmail       string          `gorm:"size:190" json:"customer_email"`
	Amount              decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	TermMonths          int             `json:"term_months"`
	Status              Status          `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	AppliedDate         time.Time       `gorm:"type:date" json:"applied_date"`
	ProcessedByBankerID string          `gorm:"size:32" json:"processed_by_banker_id,omitempty"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string { return "loan_requests" }
