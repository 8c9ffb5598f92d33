package class

import (
	"context"
	"strings"
	"time"

	"dancedir/internal/domain/dancer"
	"dancedir/internal/pkg/apperr"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Response, error) {
	dt, err := parseDatetime(req.ClassDatetime)
	if err != nil {
		return Response{}, apperr.Wrap("class creation", err)
	}
	if err := validateTimezone(req.Timezone); err != nil {
		return Response{}, apperr.Wrap("class creation", err)
	}

	// Level defaults to BASIC when omitted on create.
	level := LevelBasic
	if req.Level != nil && *req.Level != "" {
		l, ok := ParseLevel(*req.Level)
		if !ok {
			return Response{}, apperr.Wrap("class creation", ErrInvalidLevel)
		}
		level = l
	}

	// Creation rejects unknown genres; only edits coerce them to absent.
	var genre *dancer.Genre
	if req.Genre != nil && *req.Genre != "" {
		g, ok := dancer.ParseGenre(*req.Genre)
		if !ok {
			return Response{}, apperr.Wrap("class creation", dancer.ErrInvalidGenre)
		}
		genre = &g
	}

	c, err := s.repo.Create(ctx, CreateParams{
		StudioID:  req.StudioID,
		DancerIDs: req.DancerIDs,
		DateTime:  dt,
		Timezone:  req.Timezone,
		Level:     &level,
		Genre:     genre,
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(c), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Response, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(c), nil
}

func (s *Service) ListByStudio(ctx context.Context, studioID string) ([]Response, error) {
	classes, err := s.repo.ListByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	return toResponses(classes), nil
}

func (s *Service) ListByDancer(ctx context.Context, dancerID string) ([]Response, error) {
	classes, err := s.repo.ListByDancer(ctx, dancerID)
	if err != nil {
		return nil, err
	}
	return toResponses(classes), nil
}

func (s *Service) Edit(ctx context.Context, id string, req EditRequest) (Response, error) {
	p := EditParams{DancerIDs: req.DancerIDs}

	if req.ClassDatetime != nil {
		dt, err := parseDatetime(*req.ClassDatetime)
		if err != nil {
			return Response{}, apperr.Wrap("class edit", err)
		}
		p.DateTime = &dt
	}
	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return Response{}, apperr.Wrap("class edit", err)
		}
		p.Timezone = req.Timezone
	}
	if req.Level != nil {
		if *req.Level == "" {
			// Empty string clears the level.
			p.ClearLevel = true
		} else {
			l, ok := ParseLevel(*req.Level)
			if !ok {
				return Response{}, apperr.Wrap("class edit", ErrInvalidLevel)
			}
			p.Level = &l
		}
	}
	if req.Genre != nil {
		// An unknown genre clears instead of failing.
		if g, ok := dancer.ParseGenre(*req.Genre); ok {
			p.Genre = &g
		} else {
			p.ClearGenre = true
		}
	}

	c, err := s.repo.Edit(ctx, id, p)
	if err != nil {
		return Response{}, err
	}
	return toResponse(c), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toResponses(classes []Class) []Response {
	out := make([]Response, 0, len(classes))
	for i := range classes {
		out = append(out, toResponse(&classes[i]))
	}
	return out
}

func parseDatetime(v string) (time.Time, error) {
	// Accept a trailing Z as UTC, same as offset notation.
	v = strings.TrimSpace(v)
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDatetime
	}
	return t, nil
}

func validateTimezone(tz string) error {
	if tz == "" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}
