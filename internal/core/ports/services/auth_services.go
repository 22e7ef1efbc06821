package services

import (
	"context"

	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// AuthSvc authenticates the shop owner and issues access tokens.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
