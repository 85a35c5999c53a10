package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan status transition")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusCompleted }

// Loan rows are created only by the approval engine, never directly.
type Loan struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID           string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID       string          `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths       int             `json:"term_months"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	Status           Status          `gorm:"type:enum('active','completed');default:'active'" json:"status"`
	StartDate        time.Time       `gorm:"type:date" json:"start_date"`
	NextDueDate      time.Time       `gorm:"type:date" json:"next_due_date"`
	IssuedByBankerID string          `gorm:"size:32" json:"issued_by_banker_id"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// DueDate returns the due date of the n-th installment (n >= 1) using plain
// calendar month arithmetic. Month-end starts normalize per time.AddDate
// (Jan 31 + 1 month = Mar 2/3); one policy, applied everywhere.
func DueDate(start time.Time, n int) time.Time {
	return start.AddDate(0, n, 0)
}
