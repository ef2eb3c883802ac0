package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"clinicdesk/internal/auth"
	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/model"
	"clinicdesk/internal/repository"
)

// AuthService handles doctor authentication.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, doctor *model.Doctor, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	doctorRepo repository.DoctorRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(doctorRepo repository.DoctorRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		doctorRepo: doctorRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		now:        time.Now,
	}
}

// Login authenticates a doctor and issues a one hour access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Doctor, error) {
	doctor, err := s.doctorRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrDoctorNotFound
		}
		return "", nil, fmt.Errorf("find doctor: %w", err)
	}

	if !auth.CheckPassword(doctor.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidPassword
	}

	token, _, err := s.jwtService.GenerateAccessToken(doctor.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return token, doctor, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.tokenStore.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
