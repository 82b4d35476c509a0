package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	denylist     *mockService.MockTokenDenylist
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	denylist := mockService.NewMockTokenDenylist(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Denylist:     denylist,
		Logger:       newDiscardLogger(),
	}).(*authService)
	srv.now = func() time.Time { return now }

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		denylist:     denylist,
		now:          now,
	}
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Secret#123").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 12
		}).
		Return(nil)
	fx.tokenService.On("GenerateAccessToken", int64(12)).Return("jwt", fx.now.Add(time.Hour), nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "1234567890",
		Password: "Secret#123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, int64(12), out.User.ID)
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&entity.User{ID: 12, PasswordHash: "hashed"}, nil)
	fx.hasher.On("Check", "Secret#123", "hashed").Return(true)
	fx.tokenService.On("GenerateAccessToken", int64(12)).Return("jwt", fx.now.Add(24*time.Hour), nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Secret#123"})
	require.NoError(t, err)
	assert.Equal(t, int64(86400), out.ExpiresIn)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, domainerrors.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&entity.User{ID: 12, PasswordHash: "hashed"}, nil)
				fx.hasher.On("Check", "Secret#123", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com", Password: "Secret#123"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
			fx.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
		})
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	claims := &service.Claims{ID: "tok-1", UserID: 7, ExpiresAt: fx.now.Add(time.Hour)}

	fx.denylist.On("Revoke", ctx, "tok-1", fx.now.Add(time.Hour)).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, claims))
}

func TestAuthService_Logout_Failures(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	err := fx.service.Logout(ctx, &service.Claims{UserID: 7})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	fx.denylist.On("Revoke", ctx, "tok-2", mock.Anything).Return(errors.New("redis down"))

	err = fx.service.Logout(ctx, &service.Claims{ID: "tok-2", UserID: 7})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
