package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/auth"
	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/domain/user"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/jwt"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// fakeSecondFactor stands in for the two-factor service. When enabled,
// only the configured code passes ValidateLogin.
type fakeSecondFactor struct {
	enabled bool
	code    string
}

func (f *fakeSecondFactor) Enable(ctx context.Context, req twofactor.EnableRequest) (twofactor.SetupResponse, error) {
	return twofactor.SetupResponse{}, nil
}

func (f *fakeSecondFactor) VerifySetup(ctx context.Context, req twofactor.VerifyRequest) (twofactor.StatusResponse, error) {
	return twofactor.StatusResponse{}, nil
}

func (f *fakeSecondFactor) SendCode(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeSecondFactor) ValidateLogin(ctx context.Context, req twofactor.VerifyRequest) error {
	if !f.enabled || req.Code != f.code {
		return twofactor.ErrInvalidCode
	}
	return nil
}

func (f *fakeSecondFactor) Disable(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeSecondFactor) Status(ctx context.Context, userID string) (twofactor.StatusResponse, error) {
	return twofactor.StatusResponse{Enabled: f.enabled}, nil
}

type authFixture struct {
	svc          auth.AuthService
	userRepo     *fakeUserRepo
	secondFactor *fakeSecondFactor
	jwtService   jwt.Service
}

func newAuthFixture() *authFixture {
	userRepo := newFakeUserRepo()
	secondFactor := &fakeSecondFactor{}
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	clk := clock.Fixed{T: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	return &authFixture{
		svc:          NewAuthService(userRepo, secondFactor, jwtService, clk),
		userRepo:     userRepo,
		secondFactor: secondFactor,
		jwtService:   jwtService,
	}
}

func (f *authFixture) register(t *testing.T, email, password string) auth.UserResponse {
	t.Helper()
	u, err := f.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    email,
		Password: password,
		Role:     string(user.RoleEmployee),
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	created := f.register(t, "ana@example.com", "s3cret-pass")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ana@example.com", created.Email)

	tokens, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	tok, err := jwtauth.VerifyToken(f.jwtService.JWTAuth(), tokens.AccessToken)
	require.NoError(t, err)

	typ, _ := tok.Get("type")
	assert.Equal(t, "access", typ)
	userID, _ := tok.Get("user_id")
	assert.Equal(t, created.ID, userID)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, auth.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "SUPERUSER",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")

	_, err := f.svc.Register(ctx, auth.RegisterRequest{
		Email:    "ana@example.com",
		Password: "another-pass",
		Role:     string(user.RoleManager),
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")

	_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_SecondFactor(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")
	f.secondFactor.enabled = true
	f.secondFactor.code = "123456"

	_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, auth.ErrTwoFactorRequired)

	wrong := "654321"
	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass", TwoFactorCode: &wrong})
	assert.ErrorIs(t, err, twofactor.ErrInvalidCode)

	right := "123456"
	tokens, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass", TwoFactorCode: &right})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")
	tokens, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	rotated, err := f.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	// The presented refresh token is single use.
	_, err = f.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")
	tokens, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestAuthService_Logout_RevokesTokens(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.register(t, "ana@example.com", "s3cret-pass")
	tokens, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	err = f.svc.Logout(ctx, auth.LogoutRequest{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)

	assert.True(t, f.jwtService.IsTokenRevoked(tokens.AccessToken))

	_, err = f.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}
