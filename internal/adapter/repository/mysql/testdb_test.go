package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "loandesk-backend/internal/domain/loan"
	requestDomain "loandesk-backend/internal/domain/request"
	userDomain "loandesk-backend/internal/domain/user"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type userSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	UserID         string          `gorm:"size:32;column:user_id"`
	Name           string          `gorm:"column:name"`
	Age            int             `gorm:"column:age"`
	Email          string          `gorm:"column:email"`
	Password       string          `gorm:"column:password"`
	Phone          string          `gorm:"column:phone"`
	Role           string          `gorm:"type:text;column:role"` // ← no enum
	BankerID       string          `gorm:"column:banker_id"`
	IsApproved     bool            `gorm:"column:is_approved"`
	AccountNumber  string          `gorm:"column:account_number"`
	AccountBalance decimal.Decimal `gorm:"type:decimal(18,2);column:account_balance"`
	WalletBalance  decimal.Decimal `gorm:"type:decimal(18,2);column:wallet_balance"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type requestSQLite struct {
	ID                  uint64          `gorm:"primaryKey;column:id"`
	RequestID           string          `gorm:"size:32;column:request_id"`
	CustomerID          string          `gorm:"size:32;column:customer_id"`
	CustomerName        string          `gorm:"column:customer_name"`
	CustomerEmail       string          `gorm:"column:customer_email"`
	Amount              decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	TermMonths          int             `gorm:"column:term_months"`
	Status              string          `gorm:"type:text;column:status"` // ← no enum
	AppliedDate         time.Time       `gorm:"column:applied_date"`
	ProcessedByBankerID string          `gorm:"column:processed_by_banker_id"`
	CreatedAt           time.Time       `gorm:"column:created_at"`
	UpdatedAt           time.Time       `gorm:"column:updated_at"`
}

func (requestSQLite) TableName() string { return "loan_requests" }

type loanSQLite struct {
	ID               uint64          `gorm:"primaryKey;column:id"`
	LoanID           string          `gorm:"size:32;column:loan_id"`
	CustomerID       string          `gorm:"size:32;column:customer_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,2);column:interest_rate"`
	TermMonths       int             `gorm:"column:term_months"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(18,2);column:monthly_payment"`
	Status           string          `gorm:"type:text;column:status"` // ← no enum
	StartDate        time.Time       `gorm:"column:start_date"`
	NextDueDate      time.Time       `gorm:"column:next_due_date"`
	IssuedByBankerID string          `gorm:"column:issued_by_banker_id"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &requestSQLite{}, &loanSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCustomer(userID string) *userDomain.User {
	return &userDomain.User{
		UserID:         userID,
		Name:           "Ada Customer",
		Age:            34,
		Email:          userID + "@example.com",
		Password:       "$2a$10$notarealhash",
		Phone:          "555-0100",
		Role:           userDomain.RoleCustomer,
		IsApproved:     true,
		AccountNumber:  "ACC-12345678-9999",
		AccountBalance: decimal.Zero,
		WalletBalance:  decimal.Zero,
	}
}

func makeBanker(userID string, wallet string) *userDomain.User {
	return &userDomain.User{
		UserID:        userID,
		Name:          "Bob Banker",
		Age:           41,
		Email:         userID + "@bank.example.com",
		Phone:         "555-0101",
		Role:          userDomain.RoleBanker,
		BankerID:      "BR-7",
		IsApproved:    true,
		WalletBalance: decimal.RequireFromString(wallet),
	}
}

func makeRequest(requestID, customerID, amount string, term int) *requestDomain.LoanRequest {
	return &requestDomain.LoanRequest{
		RequestID:     requestID,
		CustomerID:    customerID,
		CustomerName:  "Ada Customer",
		CustomerEmail: customerID + "@example.com",
		Amount:        decimal.RequireFromString(amount),
		TermMonths:    term,
		Status:        requestDomain.StatusPending,
		AppliedDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func makeLoan(loanID, customerID, bankerID string) *loanDomain.Loan {
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	return &loanDomain.Loan{
		LoanID:           loanID,
		CustomerID:       customerID,
		Amount:           decimal.RequireFromString("12000"),
		InterestRate:     decimal.RequireFromString("6"),
		TermMonths:       12,
		MonthlyPayment:   decimal.RequireFromString("1032.80"),
		Status:           loanDomain.StatusActive,
		StartDate:        start,
		NextDueDate:      loanDomain.DueDate(start, 1),
		IssuedByBankerID: bankerID,
	}
}
