package user

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/user"
	"loandesk-backend/internal/testutil/usermock"
)

func TestList_MapsRows(t *testing.T) {
	users := &usermock.Repo{
		ListFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{UserID: "a", Role: user.RoleCustomer, AccountBalance: decimal.RequireFromString("12.50")},
				{UserID: "b", Role: user.RoleBanker, WalletBalance: decimal.RequireFromString("900")},
			}, nil
		},
	}
	uc := NewUsecase(users)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].UserID != "a" || !got[0].AccountBalance.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("row 0 = %+v", got[0])
	}
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	stored := &user.User{
		UserID:        "bank0000000000000000000000000001",
		Role:          user.RoleBanker,
		IsApproved:    false,
		WalletBalance: decimal.RequireFromString("1000000"),
	}
	var saved *user.User
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) { return stored, nil },
		SaveFn:        func(ctx context.Context, u *user.User) error { saved = u; return nil },
	}
	uc := NewUsecase(users)

	approve := true
	got, err := uc.Update(context.Background(), stored.UserID, UpdateInput{IsApproved: &approve})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved == nil || !saved.IsApproved {
		t.Fatal("approval flag not persisted")
	}
	// omitted fields stay untouched
	if !saved.WalletBalance.Equal(decimal.RequireFromString("1000000")) {
		t.Fatalf("wallet mutated: %s", saved.WalletBalance)
	}
	if !got.IsApproved {
		t.Fatalf("dto = %+v", got)
	}
}

func TestUpdate_Balances(t *testing.T) {
	stored := &user.User{UserID: "u", Role: user.RoleCustomer, IsApproved: true}
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) { return stored, nil },
	}
	uc := NewUsecase(users)

	newBal := decimal.RequireFromString("250.75")
	got, err := uc.Update(context.Background(), "u", UpdateInput{AccountBalance: &newBal})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.AccountBalance.Equal(newBal) {
		t.Fatalf("account balance = %s, want 250.75", got.AccountBalance)
	}
	if !got.IsApproved {
		t.Fatal("approval flag must be untouched")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}) // getter defaults to record-not-found
	_, err := uc.Update(context.Background(), "missing", UpdateInput{})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	users := &usermock.Repo{
		DeleteFn: func(ctx context.Context, userID string) error {
			if userID == "missing" {
				return gorm.ErrRecordNotFound
			}
			return nil
		},
	}
	uc := NewUsecase(users)

	if err := uc.Delete(context.Background(), "present"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
