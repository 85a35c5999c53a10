package auth

import (
	"time"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/user"
)

type RegisterInput struct {
	Name     string
	Age      int
	Email    string
	Password string
	Phone    string
	Role     user.Role
	BankerID string
}

type LoginInput struct {
	Email    string
	Password string
}

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

type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
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
