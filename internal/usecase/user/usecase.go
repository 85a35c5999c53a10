package user

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/user"
)

type Usecase struct{ users user.Repository }

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

type UserDTO struct {
	UserID         string          `json:"user_id"`
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Role           string          `json:"role"`
	BankerID       string          `json:"banker_id,omitempty"`
	IsApproved     bool            `json:"is_approved"`
	AccountNumber  string          `json:"account_number,omitempty"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	WalletBalance  decimal.Decimal `json:"wallet_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toDTO(u *user.User) UserDTO {
	return UserDTO{
		UserID:         u.UserID,
		Name:           u.Name,
		Age:            u.Age,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           string(u.Role),
		BankerID:       u.BankerID,
		IsApproved:     u.IsApproved,
		AccountNumber:  u.AccountNumber,
		AccountBalance: u.AccountBalance,
		WalletBalance:  u.WalletBalance,
		CreatedAt:      u.CreatedAt,
	}
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	all, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(all))
	for i := range all {
		out = append(out, toDTO(&all[i]))
	}
	return out, nil
}

// UpdateInput carries an admin's partial update; nil fields are left as-is.
// Flipping IsApproved to true is how a banker account gets activated.
type UpdateInput struct {
	IsApproved     *bool
	AccountBalance *decimal.Decimal
	WalletBalance  *decimal.Decimal
}

func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput) (*UserDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	if in.IsApproved != nil {
		usr.IsApproved = *in.IsApproved
	}
	if in.AccountBalance != nil {
		usr.AccountBalance = *in.AccountBalance
	}
	if in.WalletBalance != nil {
		usr.WalletBalance = *in.WalletBalance
	}

	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

func (u *Usecase) Delete(ctx context.Context, userID string) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}
	return nil
}
