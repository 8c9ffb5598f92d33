package class

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancedir/internal/domain/dancer"
	"dancedir/internal/pkg/apperr"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Class, error) {
	var c Class
	err := r.db.WithContext(ctx).
		Preload("Dancers").
		Where("class_id = ?", id).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByStudio(ctx context.Context, studioID string) ([]Class, error) {
	var classes []Class
	err := r.db.WithContext(ctx).
		Preload("Dancers").
		Where("studio_id = ?", studioID).
		Find(&classes).Error
	return classes, err
}

func (r *Repository) ListByDancer(ctx context.Context, dancerID string) ([]Class, error) {
	var classes []Class
	err := r.db.WithContext(ctx).
		Preload("Dancers").
		Joins("JOIN class_dancer_association a ON a.class_id = classes.class_id").
		Where("a.dancer_id = ?", dancerID).
		Find(&classes).Error
	return classes, err
}

type CreateParams struct {
	StudioID  string
	DancerIDs []string
	DateTime  time.Time
	Timezone  string
	Level     *Level
	Genre     *dancer.Genre
}

func (r *Repository) Create(ctx context.Context, p CreateParams) (*Class, error) {
	var created *Class
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkStudio(tx, p.StudioID); err != nil {
			return err
		}
		dancers, err := fetchDancers(tx, p.DancerIDs)
		if err != nil {
			return err
		}

		c := Class{
			ID:       uuid.NewString(),
			StudioID: p.StudioID,
			DateTime: p.DateTime,
			Timezone: p.Timezone,
			Level:    p.Level,
			Genre:    p.Genre,
			Dancers:  dancers,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		created = &c
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap("class creation", err)
	}
	return created, nil
}

type EditParams struct {
	DancerIDs []string
	DateTime  *time.Time
	Timezone  *string
	// ClearLevel clears the level; Level sets it. Both nil/false leaves it.
	Level      *Level
	ClearLevel bool
	// Genre follows the coercion rule: a provided but unknown genre clears.
	Genre      *dancer.Genre
	ClearGenre bool
}

func (r *Repository) Edit(ctx context.Context, id string, p EditParams) (*Class, error) {
	var edited *Class
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Class
		if err := tx.Preload("Dancers").Where("class_id = ?", id).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if p.DancerIDs != nil {
			dancers, err := fetchDancers(tx, p.DancerIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&c).Association("Dancers").Replace(dancers); err != nil {
				return err
			}
			c.Dancers = dancers
		}

		updates := map[string]any{}
		if p.DateTime != nil {
			c.DateTime = *p.DateTime
			updates["class_datetime"] = *p.DateTime
		}
		if p.Timezone != nil {
			c.Timezone = *p.Timezone
			updates["timezone"] = *p.Timezone
		}
		if p.ClearLevel {
			c.Level = nil
			updates["level"] = nil
		} else if p.Level != nil {
			c.Level = p.Level
			updates["level"] = string(*p.Level)
		}
		if p.ClearGenre {
			c.Genre = nil
			updates["genre"] = nil
		} else if p.Genre != nil {
			c.Genre = p.Genre
			updates["genre"] = string(*p.Genre)
		}

		if len(updates) > 0 {
			if err := tx.Model(&c).Updates(updates).Error; err != nil {
				return err
			}
		}
		edited = &c
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Wrap("class edit", err)
	}
	return edited, nil
}

// Delete removes the class and its association rows only; dancers and the
// studio stay.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Class
		if err := tx.Where("class_id = ?", id).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Exec("DELETE FROM class_dancer_association WHERE class_id = ?", id).Error; err != nil {
			return apperr.Wrap("class delete", err)
		}
		if err := tx.Delete(&c).Error; err != nil {
			return apperr.Wrap("class delete", err)
		}
		return nil
	})
}

func checkStudio(tx *gorm.DB, studioID string) error {
	var cnt int64
	if err := tx.Table("studios").Where("studio_id = ?", studioID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrUnknownStudio
	}
	return nil
}

func fetchDancers(tx *gorm.DB, ids []string) ([]dancer.Dancer, error) {
	var dancers []dancer.Dancer
	if err := tx.Where("dancer_id IN ?", ids).Find(&dancers).Error; err != nil {
		return nil, err
	}
	if len(dancers) != len(ids) {
		return nil, ErrUnknownDancers
	}
	return dancers, nil
}
