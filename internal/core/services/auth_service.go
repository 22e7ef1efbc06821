package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/platform/config"
	"github.com/SscSPs/shop_pos_app/internal/utils"
)

// ownerSubject is the token subject of the shop owner.
const ownerSubject = "owner"

type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the owner login service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if s.cfg.OwnerEmail == "" || s.cfg.OwnerPasswordHash == "" {
		s.GetLogger(ctx).Warn("Login attempted but no owner credentials are configured")
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.OwnerEmail)) == 1
	passwordMatches := utils.CheckPasswordHash(req.Password, s.cfg.OwnerPasswordHash)
	if !emailMatches || !passwordMatches {
		s.GetLogger(ctx).Warn("Failed login attempt", slog.String("email", email))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(ownerSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Owner logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}
