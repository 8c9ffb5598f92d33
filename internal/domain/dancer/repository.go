package dancer

import (
	"context"
	"errors"

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

func (r *Repository) GetByID(ctx context.Context, id string) (*Dancer, error) {
	var d Dancer
	err := r.db.WithContext(ctx).Where("dancer_id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetByInstagram(ctx context.Context, instagram string) (*Dancer, error) {
	var d Dancer
	err := r.db.WithContext(ctx).Where("instagram = ?", instagram).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByMainName returns the first dancer whose display name matches exactly.
func (r *Repository) GetByMainName(ctx context.Context, name string) (*Dancer, error) {
	var d Dancer
	err := r.db.WithContext(ctx).Where("main_name = ?", name).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type CreateParams struct {
	Name      string
	Instagram *string
	Genre     *string
	UserID    *string
}

func (r *Repository) Create(ctx context.Context, p CreateParams) (*Dancer, error) {
	d := Dancer{
		ID:       uuid.NewString(),
		MainName: p.Name,
		Names:    []string{p.Name},
		UserID:   p.UserID,
	}
	if p.Instagram != nil && *p.Instagram != "" {
		d.Instagram = p.Instagram
	}
	if p.Genre != nil && *p.Genre != "" {
		g, ok := ParseGenre(*p.Genre)
		if !ok {
			return nil, apperr.Wrap("dancer creation", ErrInvalidGenre)
		}
		d.Genre = &g
	}

	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, apperr.Wrap("dancer creation", err)
	}
	return &d, nil
}

// AddName appends name to the dancer's alias list if absent. The display
// name stays pinned to the first alias.
func (r *Repository) AddName(ctx context.Context, id string, name string) (*Dancer, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !containsName(d.Names, name) {
		d.Names = append(d.Names, name)
		d.MainName = d.Names[0]
		err := r.db.WithContext(ctx).Model(d).Updates(map[string]any{
			"names":     d.Names,
			"main_name": d.MainName,
		}).Error
		if err != nil {
			return nil, apperr.Wrap("dancer edit", err)
		}
	}
	return d, nil
}

type EditParams struct {
	Names      []string
	MainName   *string
	Instagram  *string
	Genre      *string
	IsVerified *bool
}

// Edit applies the provided fields only. An unrecognized genre clears the
// genre instead of failing.
func (r *Repository) Edit(ctx context.Context, id string, p EditParams) (*Dancer, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Names != nil {
		d.Names = p.Names
		updates["names"] = d.Names
		if len(p.Names) > 0 {
			d.MainName = p.Names[0]
			updates["main_name"] = d.MainName
		}
	}
	if p.MainName != nil {
		d.MainName = *p.MainName
		updates["main_name"] = d.MainName
	}
	if p.Instagram != nil {
		d.Instagram = p.Instagram
		updates["instagram"] = p.Instagram
	}
	if p.Genre != nil {
		if g, ok := ParseGenre(*p.Genre); ok {
			d.Genre = &g
			updates["genre"] = string(g)
		} else {
			d.Genre = nil
			updates["genre"] = nil
		}
	}
	if p.IsVerified != nil {
		d.IsVerified = *p.IsVerified
		updates["is_verified"] = *p.IsVerified
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(d).Updates(updates).Error; err != nil {
			return nil, apperr.Wrap("dancer edit", err)
		}
	}
	return d, nil
}

// Delete removes the dancer and its class association rows. Classes
// themselves are left untouched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d Dancer
		if err := tx.Where("dancer_id = ?", id).First(&d).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Exec("DELETE FROM class_dancer_association WHERE dancer_id = ?", id).Error; err != nil {
			return apperr.Wrap("dancer delete", err)
		}
		if err := tx.Delete(&d).Error; err != nil {
			return apperr.Wrap("dancer delete", err)
		}
		return nil
	})
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
