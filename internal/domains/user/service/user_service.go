package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"booktracker-backend/internal/domains/user"
	"booktracker-backend/pkg/jwt"
)

type userService struct {
	userRepo   user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(userRepo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Reject duplicates with distinct errors. The unique
	// indexes remain the arbiter under concurrency; these checks
	// exist for the distinct messages.
	taken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, user.ErrUsernameTaken
	}

	taken, err = s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 4: Persist
	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	resp := user.NewUserResponse(u)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByIdentifier(ctx, req.Username)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}

	pair, err := s.issuePair(u)
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		TokenPairResponse: *pair,
		User:              user.NewUserResponse(u),
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshTokenRequest) (*user.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefresh
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefresh
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrInvalidRefresh
	}
	if err != nil {
		return nil, err
	}

	return s.issuePair(u)
}

func (s *userService) issuePair(u *user.User) (*user.TokenPairResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &user.TokenPairResponse{Access: access, Refresh: refresh}, nil
}
