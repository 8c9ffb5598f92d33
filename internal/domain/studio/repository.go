package studio

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

func (r *Repository) GetByID(ctx context.Context, id string) (*Studio, error) {
	var s Studio
	err := r.db.WithContext(ctx).Where("studio_id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*Studio, error) {
	var s Studio
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetByInstagram(ctx context.Context, instagram string) (*Studio, error) {
	var s Studio
	err := r.db.WithContext(ctx).Where("instagram = ?", instagram).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Studio, error) {
	var studios []Studio
	err := r.db.WithContext(ctx).Order("name").Find(&studios).Error
	return studios, err
}

func (r *Repository) Create(ctx context.Context, s *Studio) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return apperr.Wrap("studio creation", err)
	}
	return nil
}

type EditParams struct {
	Name            *string
	Instagram       *string
	Location        *string
	Lat             *float64
	Lng             *float64
	Station         *string
	City            *string
	District        *string
	Email           *string
	Website         *string
	ReservationForm *string
	DefaultDuration *string
	DefaultPrice    *int64
	Youtube         *string
	Bio             *string
	IsVerified      *bool
}

// Edit applies only the provided fields.
func (r *Repository) Edit(ctx context.Context, id string, p EditParams) (*Studio, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	setString := func(col string, dst **string, v *string) {
		if v != nil {
			*dst = v
			updates[col] = *v
		}
	}
	if p.Name != nil {
		s.Name = *p.Name
		updates["name"] = *p.Name
	}
	setString("instagram", &s.Instagram, p.Instagram)
	setString("location", &s.Location, p.Location)
	setString("station", &s.Station, p.Station)
	setString("city", &s.City, p.City)
	setString("district", &s.District, p.District)
	setString("email", &s.Email, p.Email)
	setString("website", &s.Website, p.Website)
	setString("reservation_form", &s.ReservationForm, p.ReservationForm)
	setString("default_duration", &s.DefaultDuration, p.DefaultDuration)
	setString("youtube", &s.Youtube, p.Youtube)
	setString("bio", &s.Bio, p.Bio)
	if p.Lat != nil {
		s.Lat = p.Lat
		updates["lat"] = *p.Lat
	}
	if p.Lng != nil {
		s.Lng = p.Lng
		updates["lng"] = *p.Lng
	}
	if p.DefaultPrice != nil {
		s.DefaultPrice = p.DefaultPrice
		updates["default_price"] = *p.DefaultPrice
	}
	if p.IsVerified != nil {
		s.IsVerified = *p.IsVerified
		updates["is_verified"] = *p.IsVerified
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(s).Updates(updates).Error; err != nil {
			return nil, apperr.Wrap("studio edit", err)
		}
	}
	return s, nil
}

// Delete removes the studio together with all of its classes and their
// dancer association rows.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s Studio
		if err := tx.Where("studio_id = ?", id).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		err := tx.Exec(`DELETE FROM class_dancer_association WHERE class_id IN
			(SELECT class_id FROM classes WHERE studio_id = ?)`, id).Error
		if err != nil {
			return apperr.Wrap("studio delete", err)
		}
		if err := tx.Exec("DELETE FROM classes WHERE studio_id = ?", id).Error; err != nil {
			return apperr.Wrap("studio delete", err)
		}
		if err := tx.Delete(&s).Error; err != nil {
			return apperr.Wrap("studio delete", err)
		}
		return nil
	})
}
