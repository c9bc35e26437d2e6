package user

import "context"

// Service is the user business logic contract
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (*TokenPairResponse, error)
}
