package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByUserIDForUpdate reads the row under SELECT ... FOR UPDATE; callers
	// must hold an open transaction (see uow.UnitOfWork).
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID string) error
}
