package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBankerNotApproved  = errors.New("banker account is pending administrator approval")
	ErrInvalidRole        = errors.New("invalid role")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBanker   Role = "banker"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleBanker, RoleAdmin:
		return true
	}
	return false
}

// AccountBalance holds funds a customer has received; WalletBalance is a
// banker's remaining lending capacity. Never both in play for one row.
type User struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	UserID         string          `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name           string          `gorm:"size:120" json:"name"`
	Age            int             `json:"age"`
	Email          string          `gorm:"size:190;uniqueIndex:ux_users_email" json:"email"`
	Password       string          `gorm:"size:120" json:"-"`
	Phone          string          `gorm:"size:32" json:"phone"`
	Role           Role            `gorm:"type:enum('customer','banker','admin')" json:"role"`
	BankerID       string          `gorm:"size:32" json:"banker_id,omitempty"`
	IsApproved     bool            `json:"is_approved"`
	AccountNumber  string          `gorm:"size:32" json:"account_number,omitempty"`
	AccountBalance decimal.Decimal `gorm:"type:decimal(18,2)" json:"account_balance"`
	WalletBalance  decimal.Decimal `gorm:"type:decimal(18,2)" json:"wallet_balance"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
