package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joabe-nascimento/talents-flow/internal/domain/auth"
	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/domain/user"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	twoFactorSvc twofactor.TwoFactorService
	jwtService   jwt.Service
	clock        clock.Clock
}

func NewAuthService(
	userRepo user.UserRepository,
	twoFactorSvc twofactor.TwoFactorService,
	jwtService jwt.Service,
	clk clock.Clock,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		twoFactorSvc: twoFactorSvc,
		jwtService:   jwtService,
		clock:        clk,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	u := user.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.UserRole(req.Role),
		EmployeeID:   req.EmployeeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return auth.ToUserResponse(created), nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	status, err := s.twoFactorSvc.Status(ctx, u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check second factor: %w", err)
	}
	if status.Enabled {
		if req.TwoFactorCode == nil {
			return auth.TokenResponse{}, auth.ErrTwoFactorRequired
		}
		if err := s.twoFactorSvc.ValidateLogin(ctx, twofactor.VerifyRequest{UserID: u.ID, Code: *req.TwoFactorCode}); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	tok, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	typ, _ := tok.Get("type")
	if typ != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}
	rawID, _ := tok.Get("user_id")
	userID, ok := rawID.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	// Rotation: the presented refresh token is single use.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, req auth.LogoutRequest) error {
	if req.AccessToken != "" {
		s.jwtService.RevokeToken(req.AccessToken)
	}
	if req.RefreshToken != "" {
		s.jwtService.RevokeToken(req.RefreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresAt, err = s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, string(u.Role))
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshTokenExpiresAt, err = s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return resp, nil
}
