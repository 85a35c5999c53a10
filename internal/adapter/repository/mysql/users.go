package mysql

import (
	"context"

	userDomain "loandesk-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

// GetByUserIDForUpdate issues SELECT ... FOR UPDATE; only meaningful on a
// *gorm.DB bound to an open transaction.
func (r *UserRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := forUpdate(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
