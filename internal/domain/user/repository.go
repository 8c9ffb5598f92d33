package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancedir/internal/pkg/apperr"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return apperr.Wrap("user creation", err)
	}
	return nil
}

type EditParams struct {
	Username     *string
	PasswordHash *string
	Type         *Type
}

func (r *Repository) Edit(ctx context.Context, id string, p EditParams) (*User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Username != nil {
		u.Username = *p.Username
		updates["username"] = *p.Username
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
		updates["password_hash"] = *p.PasswordHash
	}
	if p.Type != nil {
		u.Type = *p.Type
		updates["type"] = string(*p.Type)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
			if apperr.IsUniqueViolation(err) {
				return nil, ErrUsernameTaken
			}
			return nil, apperr.Wrap("user edit", err)
		}
	}
	return u, nil
}

// Delete removes the user. Dancer and studio rows referencing it keep
// existing with their user_id cleared.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.Where("user_id = ?", id).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Exec("UPDATE dancers SET user_id = NULL WHERE user_id = ?", id).Error; err != nil {
			return apperr.Wrap("user delete", err)
		}
		if err := tx.Exec("UPDATE studios SET user_id = NULL WHERE user_id = ?", id).Error; err != nil {
			return apperr.Wrap("user delete", err)
		}
		if err := tx.Delete(&u).Error; err != nil {
			return apperr.Wrap("user delete", err)
		}
		return nil
	})
}

func (r *Repository) BlockToken(ctx context.Context, jti string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&BlockedToken{
		JTI:       jti,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}).Error
}

func (r *Repository) IsTokenBlocked(ctx context.Context, jti string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&BlockedToken{}).
		Where("jti = ?", jti).
		Count(&cnt).Error
	return cnt > 0, err
}

// PurgeExpiredTokens drops blocklist rows past their expiry.
func (r *Repository) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&BlockedToken{})
	return res.RowsAffected, res.Error
}
