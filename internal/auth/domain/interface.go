package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/CasualJavaUser/FlashcardApi/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_refresh_registry.go -package=mocks github.com/CasualJavaUser/FlashcardApi/internal/auth/domain RefreshTokenRegistry

type UserRepository interface {
	Create(ctx context.Context, user *User) (int64, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// RefreshTokenRegistry maps an issued refresh token string to the user it
// belongs to. Entries expire with the refresh token itself and can be
// revoked on logout.
type RefreshTokenRegistry interface {
	Save(token string, userID int64)
	FindID(token string) (int64, bool)
	Revoke(token string)
}
