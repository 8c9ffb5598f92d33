package studio

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dancedir/internal/pkg/apperr"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Response, error) {
	if err := validateDuration(req.DefaultDuration); err != nil {
		return Response{}, apperr.Wrap("studio creation", err)
	}

	st := &Studio{
		Name:            req.Name,
		Instagram:       emptyToNil(req.Instagram),
		Location:        req.Location,
		Lat:             req.Lat,
		Lng:             req.Lng,
		Station:         req.Station,
		City:            req.City,
		District:        req.District,
		Email:           req.Email,
		Website:         req.Website,
		ReservationForm: req.ReservationForm,
		DefaultDuration: req.DefaultDuration,
		DefaultPrice:    req.DefaultPrice,
		Youtube:         req.Youtube,
		Bio:             req.Bio,
		UserID:          req.UserID,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return Response{}, err
	}
	return toResponse(st), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Response, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(st), nil
}

func (s *Service) GetByInstagram(ctx context.Context, instagram string) (Response, error) {
	st, err := s.repo.GetByInstagram(ctx, instagram)
	if err != nil {
		return Response{}, err
	}
	return toResponse(st), nil
}

func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	studios, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]ListItem, 0, len(studios))
	for _, st := range studios {
		items = append(items, toListItem(st))
	}
	return items, nil
}

func (s *Service) Edit(ctx context.Context, id string, req EditRequest) (Response, error) {
	if err := validateDuration(req.DefaultDuration); err != nil {
		return Response{}, apperr.Wrap("studio edit", err)
	}

	st, err := s.repo.Edit(ctx, id, EditParams{
		Name:            req.Name,
		Instagram:       req.Instagram,
		Location:        req.Location,
		Lat:             req.Lat,
		Lng:             req.Lng,
		Station:         req.Station,
		City:            req.City,
		District:        req.District,
		Email:           req.Email,
		Website:         req.Website,
		ReservationForm: req.ReservationForm,
		DefaultDuration: req.DefaultDuration,
		DefaultPrice:    req.DefaultPrice,
		Youtube:         req.Youtube,
		Bio:             req.Bio,
		IsVerified:      req.IsVerified,
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(st), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateDuration(v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	parts := strings.Split(*v, ":")
	if len(parts) != 3 {
		return ErrInvalidDuration
	}
	bounds := [3]int{23, 59, 59}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > bounds[i] {
			return fmt.Errorf("%w: %s", ErrInvalidDuration, *v)
		}
	}
	return nil
}

func emptyToNil(v *string) *string {
	if v != nil && *v == "" {
		return nil
	}
	return v
}
