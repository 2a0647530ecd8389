package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/CasualJavaUser/FlashcardApi/internal/auth/service TokenGenerator

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator mints and verifies the signed credentials used by the API.
type TokenGenerator interface {
	CreateAccessToken(userID int64) (string, error)
	CreateRefreshToken(userID int64) (string, error)
	DecodeAndVerify(tokenString string) *Claims
	Validate(ctx context.Context, claims *Claims) (int64, bool)
}

// UserDirectory answers "does this user still exist", the only outside check
// a well-formed credential is subject to.
type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

type TokenService struct {
	Secret             string
	Issuer             string
	Audience           string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	users UserDirectory
	now   func() time.Time
}

func NewTokenService(secret, issuer, audience string, accessSeconds, refreshMinutes int, users UserDirectory) *TokenService {
	return &TokenService{
		Secret:             secret,
		Issuer:             issuer,
		Audience:           audience,
		AccessTokenExpiry:  time.Duration(accessSeconds) * time.Second,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
		users:              users,
		now:                time.Now,
	}
}

// WithNow replaces the clock, for deterministic tests.
func (ts *TokenService) WithNow(now func() time.Time) *TokenService {
	ts.now = now
	return ts
}

func (ts *TokenService) CreateAccessToken(userID int64) (string, error) {
	return ts.createToken(userID, ts.AccessTokenExpiry)
}

func (ts *TokenService) CreateRefreshToken(userID int64) (string, error) {
	return ts.createToken(userID, ts.RefreshTokenExpiry)
}

func (ts *TokenService) createToken(userID int64, expiry time.Duration) (string, error) {
	now := ts.now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Audience:  jwt.ClaimStrings{ts.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// DecodeAndVerify parses and verifies the given token string. It returns nil
// on any failure (malformed token, bad signature, expiry, wrong issuer or
// audience) rather than an error; callers only need to know the credential
// did not authenticate.
func (ts *TokenService) DecodeAndVerify(tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(ts.Secret), nil
	},
		jwt.WithIssuer(ts.Issuer),
		jwt.WithAudience(ts.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)

	if err != nil || !token.Valid {
		return nil
	}

	if claims.UserID <= 0 {
		return nil
	}

	return claims
}

// Validate resolves an already-verified credential to an authenticated user
// id. It re-checks the audience and confirms the subject still exists in the
// user directory; this is the inbound-request path, the refresh flow uses
// DecodeAndVerify directly.
func (ts *TokenService) Validate(ctx context.Context, claims *Claims) (int64, bool) {
	if claims == nil || claims.UserID <= 0 {
		return 0, false
	}

	if !containsAudience(claims.Audience, ts.Audience) {
		return 0, false
	}

	exists, err := ts.users.Exists(ctx, claims.UserID)
	if err != nil || !exists {
		return 0, false
	}

	return claims.UserID, true
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

var _ TokenGenerator = (*TokenService)(nil)
