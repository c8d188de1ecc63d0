package usecase

import (
	"context"
	"errors"

	"homestay-booking/internal/domain/user"
	"homestay-booking/internal/pkg/jwt"
	"homestay-booking/internal/pkg/password"
	"homestay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, pass user.Password) (string, *queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userReadStore queries.UserReadStore
	jwtService    *jwt.Service
}

func NewAuthUseCase(userReadStore queries.UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userReadStore: userReadStore,
		jwtService:    jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, pass user.Password) (string, *queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userReadStore.FindByEmail(ctx, email.Value())
	if err != nil || view == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.Verify(hashedPassword, pass.Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
