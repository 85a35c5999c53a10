package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/loan"
	"loandesk-backend/internal/domain/user"
)

// ErrForbidden: a customer asked for another customer's loans.
var ErrForbidden = errors.New("cannot view another customer's loans")

type Usecase struct {
	loans loan.Repository
	users user.Repository
}

func NewUsecase(loans loan.Repository, users user.Repository) *Usecase {
	return &Usecase{loans: loans, users: users}
}

type LoanDTO struct {
	LoanID           string          `json:"loan_id"`
	CustomerID       string          `json:"customer_id"`
	CustomerName     string          `json:"customer_name,omitempty"`
	CustomerEmail    string          `json:"customer_email,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TermMonths       int             `json:"term_months"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	Status           string          `json:"status"`
	StartDate        time.Time       `json:"start_date"`
	NextDueDate      time.Time       `json:"next_due_date"`
	IssuedByBankerID string          `json:"issued_by_banker_id"`
}

func toDTO(l *loan.Loan) LoanDTO {
	return LoanDTO{
		LoanID:           l.LoanID,
		CustomerID:       l.CustomerID,
		Amount:           l.Amount,
		InterestRate:     l.InterestRate,
		TermMonths:       l.TermMonths,
		MonthlyPayment:   l.MonthlyPayment,
		Status:           string(l.Status),
		StartDate:        l.StartDate,
		NextDueDate:      l.NextDueDate,
		IssuedByBankerID: l.IssuedByBankerID,
	}
}

// ListAll returns every loan enriched with the customer's name and email for
// the banker/admin overview screens.
func (u *Usecase) ListAll(ctx context.Context) ([]LoanDTO, error) {
	rows, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*user.User, len(users))
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}

	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		dto := toDTO(&rows[i])
		if cust, ok := byID[rows[i].CustomerID]; ok {
			dto.CustomerName = cust.Name
			dto.CustomerEmail = cust.Email
		}
		out = append(out, dto)
	}
	return out, nil
}

// ListByCustomer returns one customer's loans. Customers may only read their
// own; bankers and admins may read anyone's.
func (u *Usecase) ListByCustomer(ctx context.Context, callerID string, callerRole user.Role, customerID string) ([]LoanDTO, error) {
	if callerRole == user.RoleCustomer && callerID != customerID {
		return nil, ErrForbidden
	}
	rows, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

// UpdateStatus drives the only legal transition, active → completed.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, s loan.Status) (*LoanDTO, error) {
	if s != loan.StatusCompleted {
		return nil, loan.ErrInvalidTransition
	}
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if l.Status != loan.StatusActive {
		return nil, loan.ErrInvalidTransition
	}

	l.Status = loan.StatusCompleted
	if err := u.loans.Save(ctx, l); err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

type ScheduleDTO struct {
	LoanID       string             `json:"loan_id"`
	Installments []loan.Installment `json:"installments"`
}

// GetSchedule expands a loan into its amortization schedule. Subject to the
// same ownership rule as ListByCustomer.
func (u *Usecase) GetSchedule(ctx context.Context, callerID string, callerRole user.Role, loanID string) (*ScheduleDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if callerRole == user.RoleCustomer && callerID != l.CustomerID {
		return nil, ErrForbidden
	}

	return &ScheduleDTO{
		LoanID:       l.LoanID,
		Installments: loan.Schedule(l.Amount, l.InterestRate, l.TermMonths, l.MonthlyPayment, l.StartDate),
	}, nil
}
