package processing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/loan"
	"loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/domain/user"
	"loandesk-backend/pkg/id"
)

var (
	// ErrInterestRateRequired: approvals must carry a non-negative rate.
	// Rejected before any lock is taken.
	ErrInterestRateRequired = errors.New("a valid interest rate is required for loan approval")
	// ErrInsufficientFunds: banker wallet cannot cover the requested amount.
	ErrInsufficientFunds = errors.New("banker does not have sufficient wallet funds to issue this loan")
)

// Usecase converts a pending loan request into a funded loan or a rejection.
// Every Process call is one database transaction; the request row lock taken
// by WithinRequestTx serializes concurrent attempts on the same request.
type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

type ProcessInput struct {
	RequestID    string
	BankerID     string
	Approved     bool
	InterestRate *decimal.Decimal // required when Approved
}

type ProcessResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	LoanID    string `json:"loan_id,omitempty"`
}

// Process approves or rejects a pending request as a single atomic unit.
//
// Approve stages five mutations — loan insert, banker wallet debit, customer
// account credit, request status, request processed-by — and commits them
// together or not at all. Reject flips only the request row. A request found
// non-pending after its lock is acquired fails with ErrAlreadyProcessed.
func (u *Usecase) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	if in.Approved && (in.InterestRate == nil || in.InterestRate.IsNegative()) {
		return nil, ErrInterestRateRequired
	}

	var result *ProcessResult

	err := u.uow.WithinRequestTx(ctx, in.RequestID, func(r uow.Repos, lr *request.LoanRequest) error {
		// re-check under the lock: a racing processor may have won
		if lr.Status.Terminal() {
			return request.ErrAlreadyProcessed
		}

		if !in.Approved {
			lr.Status = request.StatusRejected
			lr.ProcessedByBankerID = in.BankerID
			if err := r.Requests.Save(ctx, lr); err != nil {
				return err
			}
			result = &ProcessResult{RequestID: lr.RequestID, Status: string(lr.Status)}
			return nil
		}

		banker, err := r.Users.GetByUserIDForUpdate(ctx, in.BankerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}
		if banker.WalletBalance.LessThan(lr.Amount) {
			return ErrInsufficientFunds
		}

		cust, err := r.Users.GetByUserIDForUpdate(ctx, lr.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		today := u.now().Truncate(24 * time.Hour)
		l := &loan.Loan{
			LoanID:           id.NewID32(),
			CustomerID:       cust.UserID,
			Amount:           lr.Amount,
			InterestRate:     *in.InterestRate,
			TermMonths:       lr.TermMonths,
			MonthlyPayment:   loan.MonthlyPayment(lr.Amount, *in.InterestRate, lr.TermMonths),
			Status:           loan.StatusActive,
			StartDate:        today,
			NextDueDate:      loan.DueDate(today, 1),
			IssuedByBankerID: banker.UserID,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		banker.WalletBalance = banker.WalletBalance.Sub(lr.Amount)
		if err := r.Users.Save(ctx, banker); err != nil {
			return err
		}
		cust.AccountBalance = cust.AccountBalance.Add(lr.Amount)
		if err := r.Users.Save(ctx, cust); err != nil {
			return err
		}

		lr.Status = request.StatusApproved
		lr.ProcessedByBankerID = in.BankerID
		if err := r.Requests.Save(ctx, lr); err != nil {
			return err
		}

		result = &ProcessResult{RequestID: lr.RequestID, Status: string(lr.Status), LoanID: l.LoanID}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.ErrNotFound
		}
		return nil, err
	}
	return result, nil
}
