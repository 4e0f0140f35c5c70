package usecase

import (
	"context"

	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*jwt.TokenPair, *queries.AuthorizedUserView, error)
	Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	users      queries.UserReadStore
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(users queries.UserReadStore, uow shared.UnitOfWork, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*jwt.TokenPair, *queries.AuthorizedUserView, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.jwtService.GenerateTokenPair(view.ID, role)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		return nil, nil, err
	}

	return &pair, view, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.users.FindByEmail(ctx, credentials.Email().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password so emails cannot be probed.
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return view, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The user is
// re-read so deactivation and role changes take effect at rotation.
func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := a.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.jwtService.GenerateTokenPair(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &pair, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
