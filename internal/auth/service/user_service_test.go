package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CasualJavaUser/FlashcardApi/internal/auth/domain"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/dto"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/registry"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/service"
	autherror "github.com/CasualJavaUser/FlashcardApi/internal/errors"
	"github.com/CasualJavaUser/FlashcardApi/internal/mocks"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo, nil, nil)

	input := dto.RegisterInput{Login: "alice", Email: "alice@example.com", Password: "password123"}

	mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)

	user, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Login)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestUserService_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo, nil, nil)

	mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").
		Return(&domain.User{ID: 1, Login: "alice"}, nil)

	user, err := s.Register(context.Background(), dto.RegisterInput{Login: "alice", Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, autherror.ErrLoginAlreadyInUse)
	assert.Nil(t, user)
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockRegistry := mocks.NewMockRefreshTokenRegistry(ctrl)
	s := service.NewUserService(mockRepo, mockTokens, mockRegistry)
	ctx := context.Background()

	storedUser := &domain.User{
		ID:           42,
		Login:        "alice",
		PasswordHash: hashPassword(t, "correct-horse"),
	}

	t.Run("success stores refresh token", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(storedUser, nil)
		mockTokens.EXPECT().CreateAccessToken(int64(42)).Return("access-token", nil)
		mockTokens.EXPECT().CreateRefreshToken(int64(42)).Return("refresh-token", nil)
		mockRegistry.EXPECT().Save("refresh-token", int64(42))

		pair, err := s.Login(ctx, dto.LoginInput{Login: "alice", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.Equal(t, "refresh-token", pair.RefreshToken)
	})

	t.Run("unknown login is not-found, not unauthenticated", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "nobody").Return(nil, nil)

		pair, err := s.Login(ctx, dto.LoginInput{Login: "nobody", Password: "whatever"})

		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
		assert.Nil(t, pair)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(storedUser, nil)

		pair, err := s.Login(ctx, dto.LoginInput{Login: "alice", Password: "wrong"})

		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
		assert.Nil(t, pair)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(nil, assert.AnError)

		pair, err := s.Login(ctx, dto.LoginInput{Login: "alice", Password: "correct-horse"})

		assert.Error(t, err)
		assert.Nil(t, pair)
	})
}

func TestUserService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockRegistry := mocks.NewMockRefreshTokenRegistry(ctrl)
	s := service.NewUserService(mockRepo, mockTokens, mockRegistry)
	ctx := context.Background()

	claimsFor := func(userID int64) *service.Claims {
		return &service.Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:   "flashcard-api",
				Audience: jwt.ClaimStrings{"flashcard-app"},
			},
		}
	}

	t.Run("success", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("refresh-token").Return(claimsFor(42))
		mockRegistry.EXPECT().FindID("refresh-token").Return(int64(42), true)
		mockRepo.EXPECT().Exists(gomock.Any(), int64(42)).Return(true, nil)
		mockTokens.EXPECT().CreateAccessToken(int64(42)).Return("new-access-token", nil)

		token, err := s.Refresh(ctx, "refresh-token")

		require.NoError(t, err)
		assert.Equal(t, "new-access-token", token)
	})

	t.Run("unverifiable token", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("tampered").Return(nil)

		_, err := s.Refresh(ctx, "tampered")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("registry miss", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("refresh-token").Return(claimsFor(42))
		mockRegistry.EXPECT().FindID("refresh-token").Return(int64(0), false)

		_, err := s.Refresh(ctx, "refresh-token")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("subject does not match registry", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("refresh-token").Return(claimsFor(42))
		mockRegistry.EXPECT().FindID("refresh-token").Return(int64(99), true)

		_, err := s.Refresh(ctx, "refresh-token")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("vanished user", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("refresh-token").Return(claimsFor(42))
		mockRegistry.EXPECT().FindID("refresh-token").Return(int64(42), true)
		mockRepo.EXPECT().Exists(gomock.Any(), int64(42)).Return(false, nil)

		_, err := s.Refresh(ctx, "refresh-token")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})
}

// TestUserService_Refresh_EndToEnd drives the real token service and registry
// through login and refresh.
func TestUserService_Refresh_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokens := service.NewTokenService("test-secret", "flashcard-api", "flashcard-app", 60, 1440, mockRepo)
	reg := registry.NewInMemoryRegistry(24*time.Hour, 100)
	defer reg.Close()

	s := service.NewUserService(mockRepo, tokens, reg)
	ctx := context.Background()

	storedUser := &domain.User{
		ID:           42,
		Login:        "alice",
		PasswordHash: hashPassword(t, "correct-horse"),
	}

	mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(storedUser, nil)

	pair, err := s.Login(ctx, dto.LoginInput{Login: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	mockRepo.EXPECT().Exists(gomock.Any(), int64(42)).Return(true, nil)

	newAccess, err := s.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims := tokens.DecodeAndVerify(newAccess)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = s.Refresh(ctx, pair.RefreshToken+"x")
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRefreshTokenRegistry(ctrl)
	s := service.NewUserService(nil, nil, mockRegistry)

	mockRegistry.EXPECT().Revoke("refresh-token")

	s.Logout("refresh-token")
}
