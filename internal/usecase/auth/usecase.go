package auth

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"loandesk-backend/internal/domain/user"
	"loandesk-backend/pkg/id"
	"loandesk-backend/pkg/token"
)

type Usecase struct {
	users      user.Repository
	secret     string
	ttl        time.Duration
	seedWallet decimal.Decimal
}

func NewUsecase(users user.Repository, secret string, ttl time.Duration, seedWallet decimal.Decimal) *Usecase {
	return &Usecase{users: users, secret: secret, ttl: ttl, seedWallet: seedWallet}
}

// Register creates an account for the given role. Customers and admins are
// approved immediately; bankers wait for an admin and start with the seed
// wallet as lending capacity.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if !in.Role.Valid() {
		return nil, user.ErrInvalidRole
	}

	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	nu := &user.User{
		UserID:   id.NewID32(),
		Name:     in.Name,
		Age:      in.Age,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
		Role:     in.Role,
	}
	switch in.Role {
	case user.RoleCustomer:
		nu.IsApproved = true
		nu.AccountNumber = id.NewAccountNumber()
	case user.RoleBanker:
		nu.BankerID = in.BankerID
		nu.WalletBalance = u.seedWallet
	case user.RoleAdmin:
		nu.IsApproved = true
	}

	if err := u.users.Create(ctx, nu); err != nil {
		return nil, err
	}

	return u.result(nu)
}

// Login verifies credentials. Bankers cannot sign in until approved.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if usr.Role == user.RoleBanker && !usr.IsApproved {
		return nil, user.ErrBankerNotApproved
	}

	return u.result(usr)
}

func (u *Usecase) result(usr *user.User) (*AuthResult, error) {
	t, err := token.Sign(u.secret, token.Claims{
		UserID: usr.UserID,
		Name:   usr.Name,
		Email:  usr.Email,
		Role:   string(usr.Role),
	}, u.ttl)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: toDTO(usr), Token: t}, nil
}
