package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CasualJavaUser/FlashcardApi/internal/auth/handler"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/service"
	"github.com/CasualJavaUser/FlashcardApi/internal/mocks"
)

func TestAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	app := fiber.New()
	app.Get("/protected", handler.AuthRequired(mockTokens), func(c *fiber.Ctx) error {
		userID, ok := handler.UserID(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": userID})
	})

	claims := &service.Claims{
		UserID:           42,
		RegisteredClaims: jwt.RegisteredClaims{Audience: jwt.ClaimStrings{"flashcard-app"}},
	}

	t.Run("valid credential passes the user id through", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("good-token").Return(claims)
		mockTokens.EXPECT().Validate(gomock.Any(), claims).Return(int64(42), true)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non-bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Basic dXNlcjpwdw==")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unverifiable token", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("bad-token").Return(nil)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer bad-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("vanished user", func(t *testing.T) {
		mockTokens.EXPECT().DecodeAndVerify("orphan-token").Return(claims)
		mockTokens.EXPECT().Validate(gomock.Any(), claims).Return(int64(0), false)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer orphan-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
