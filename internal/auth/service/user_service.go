package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/CasualJavaUser/FlashcardApi/internal/auth/domain"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/dto"
	autherror "github.com/CasualJavaUser/FlashcardApi/internal/errors"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	registry     domain.RefreshTokenRegistry
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, registry domain.RefreshTokenRegistry) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		registry:     registry,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrLoginAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	user.ID = id

	return user, nil
}

// Login checks the password for the given login and issues an access/refresh
// token pair. An unknown login is reported distinctly from a wrong password.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, err := s.tokenService.CreateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokenService.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.registry.Save(refreshToken, user.ID)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh trades a stored refresh token for a new access token. The token
// must verify, be present in the registry, agree with the registry about the
// user it was issued for, and that user must still exist. Every failure mode
// collapses to ErrInvalidCredentials.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims := s.tokenService.DecodeAndVerify(refreshToken)
	if claims == nil {
		return "", autherror.ErrInvalidCredentials
	}

	savedID, ok := s.registry.FindID(refreshToken)
	if !ok || savedID != claims.UserID {
		return "", autherror.ErrInvalidCredentials
	}

	exists, err := s.repo.Exists(ctx, savedID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", autherror.ErrInvalidCredentials
	}

	return s.tokenService.CreateAccessToken(savedID)
}

// Logout revokes the refresh token so it can no longer be exchanged.
func (s *UserService) Logout(refreshToken string) {
	s.registry.Revoke(refreshToken)
}
