package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dancedir/internal/pkg/apperr"
	"dancedir/internal/pkg/jwt"
)

type Service struct {
	repo *Repository
	jwt  *jwt.Service
}

func NewService(repo *Repository, jwtSvc *jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	userType := TypeUser
	if req.Type != nil && *req.Type != "" {
		t, ok := ParseType(*req.Type)
		if !ok {
			return AuthResponse{}, apperr.Wrap("user creation", ErrInvalidType)
		}
		userType = t
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Type:         userType,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Type))
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{User: toResponse(u), Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResponse{}, ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Type))
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{User: toResponse(u), Token: token}, nil
}

// Logout blocks the token's jti until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil // already unusable
	}
	expiresAt := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.repo.BlockToken(ctx, claims.ID, expiresAt)
}

func (s *Service) GetByID(ctx context.Context, id string) (Response, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(u), nil
}

func (s *Service) Edit(ctx context.Context, id string, req EditRequest) (Response, error) {
	p := EditParams{Username: req.Username}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return Response{}, err
		}
		h := string(hash)
		p.PasswordHash = &h
	}
	if req.Type != nil {
		t, ok := ParseType(*req.Type)
		if !ok {
			return Response{}, apperr.Wrap("user edit", ErrInvalidType)
		}
		p.Type = &t
	}

	u, err := s.repo.Edit(ctx, id, p)
	if err != nil {
		return Response{}, err
	}
	return toResponse(u), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
