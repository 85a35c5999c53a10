package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/loan"
	"loandesk-backend/internal/domain/user"
	"loandesk-backend/internal/testutil/loanmock"
	"loandesk-backend/internal/testutil/usermock"
	loanuc "loandesk-backend/internal/usecase/loan"
)

func sampleLoan() loan.Loan {
	start := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	return loan.Loan{
		LoanID:           strings.Repeat("f", 32),
		CustomerID:       custID,
		Amount:           decimal.RequireFromString("12000.00"),
		InterestRate:     decimal.RequireFromString("6.00"),
		TermMonths:       12,
		MonthlyPayment:   decimal.RequireFromString("1032.80"),
		Status:           loan.StatusActive,
		StartDate:        start,
		NextDueDate:      loan.DueDate(start, 1),
		IssuedByBankerID: bankerID,
	}
}

func TestListLoans_EnrichesCustomer(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		ListAllFn: func(ctx context.Context) ([]loan.Loan, error) { return []loan.Loan{sampleLoan()}, nil },
	}
	users := &usermock.Repo{
		ListFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{{UserID: custID, Name: "Carol", Email: "carol@example.com"}}, nil
		},
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, users))

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out []loanuc.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(out) != 1 || out[0].CustomerName != "Carol" {
		t.Fatalf("unexpected list: %+v", out)
	}
}

func TestListLoansByCustomer_OwnershipGuard(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		ListByCustomerIDFn: func(ctx context.Context, customerID string) ([]loan.Loan, error) {
			return []loan.Loan{sampleLoan()}, nil
		},
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, &usermock.Repo{}))

	// customer reading their own loans
	c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans/customer/"+custID, nil)
	c.SetParamNames("customerId")
	c.SetParamValues(custID)
	asPrincipal(c, custID, user.RoleCustomer)
	if err := h.ListByCustomer(c); err != nil {
		t.Fatalf("ListByCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("own loans: status = %d, want 200", rec.Code)
	}

	// customer reading someone else's
	other := strings.Repeat("9", 32)
	c, rec = newCtx(e, stdhttp.MethodGet, "/api/loans/customer/"+other, nil)
	c.SetParamNames("customerId")
	c.SetParamValues(other)
	asPrincipal(c, custID, user.RoleCustomer)
	if err := h.ListByCustomer(c); err != nil {
		t.Fatalf("ListByCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("foreign loans: status = %d, want 403", rec.Code)
	}

	// banker reading anyone's
	c, rec = newCtx(e, stdhttp.MethodGet, "/api/loans/customer/"+custID, nil)
	c.SetParamNames("customerId")
	c.SetParamValues(custID)
	asPrincipal(c, bankerID, user.RoleBanker)
	if err := h.ListByCustomer(c); err != nil {
		t.Fatalf("ListByCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("banker view: status = %d, want 200", rec.Code)
	}
}

func TestUpdateLoanStatus(t *testing.T) {
	e := newEchoWithValidator()
	l := sampleLoan()
	var saved *loan.Loan
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loan.Loan, error) { cp := l; return &cp, nil },
		SaveFn:        func(ctx context.Context, in *loan.Loan) error { saved = in; return nil },
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, &usermock.Repo{}))

	c, rec := newCtx(e, stdhttp.MethodPut, "/api/loans/"+l.LoanID+"/status",
		mustJSON(map[string]string{"status": "completed"}))
	c.SetParamNames("id")
	c.SetParamValues(l.LoanID)

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.Status != loan.StatusCompleted {
		t.Fatalf("transition not persisted: %+v", saved)
	}
}

func TestUpdateLoanStatus_Rejections(t *testing.T) {
	e := newEchoWithValidator()
	l := sampleLoan()
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loan.Loan, error) { cp := l; return &cp, nil },
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, &usermock.Repo{}))

	cases := []struct {
		name   string
		status string
		want   int
	}{
		{"back to active", "active", stdhttp.StatusBadRequest},
		{"unknown status", "paused", stdhttp.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newCtx(e, stdhttp.MethodPut, "/api/loans/"+l.LoanID+"/status",
				mustJSON(map[string]string{"status": tc.status}))
			c.SetParamNames("id")
			c.SetParamValues(l.LoanID)

			if err := h.UpdateStatus(c); err != nil {
				t.Fatalf("UpdateStatus error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d; body=%s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestLoanSchedule(t *testing.T) {
	e := newEchoWithValidator()
	l := sampleLoan()
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loan.Loan, error) { cp := l; return &cp, nil },
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, &usermock.Repo{}))

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans/"+l.LoanID+"/schedule", nil)
	c.SetParamNames("id")
	c.SetParamValues(l.LoanID)
	asPrincipal(c, custID, user.RoleCustomer)

	if err := h.Schedule(c); err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var out loanuc.ScheduleDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(out.Installments) != 12 {
		t.Fatalf("installments = %d, want 12", len(out.Installments))
	}
	last := out.Installments[11]
	if !last.RemainingBalance.IsZero() {
		t.Fatalf("final balance = %s, want 0", last.RemainingBalance)
	}
}

func TestLoanSchedule_ForeignCustomer(t *testing.T) {
	e := newEchoWithValidator()
	l := sampleLoan()
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loan.Loan, error) { cp := l; return &cp, nil },
	}
	h := NewLoanHandler(loanuc.NewUsecase(loans, &usermock.Repo{}))

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans/"+l.LoanID+"/schedule", nil)
	c.SetParamNames("id")
	c.SetParamValues(l.LoanID)
	asPrincipal(c, strings.Repeat("9", 32), user.RoleCustomer)

	if err := h.Schedule(c); err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
