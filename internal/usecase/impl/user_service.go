// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account. The existence check and the insert run in
// one transaction; the unique index catches the remaining race and maps to
// the same conflict error.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.logger.Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, err
	}

	token, err := srv.tokenService.Generate(registered.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("userID", registered.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue session token")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", registered.ID))

	return &usecase.AuthOutput{User: usecase.NewUserProfile(registered), Token: token}, nil
}

// Login verifies credentials. Unknown email and wrong password take different
// paths internally but return the one ErrInvalidCredentials, so responses
// cannot be used for account enumeration.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		srv.logger.Error("Login lookup failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue session token")
	}

	srv.logger.Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: usecase.NewUserProfile(user), Token: token}, nil
}

// Profile resolves a verified identity to its public profile.
func (srv *userService) Profile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserProfile(user), nil
}
