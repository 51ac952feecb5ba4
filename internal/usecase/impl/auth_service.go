// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/policy"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active user after checking email uniqueness and password strength.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	taken, err := srv.emailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
	}

	if !policy.ValidPassword(input.Password) {
		srv.log(ctx).Warn("Registration rejected, weak password", slog.String("email", input.Email))

		return nil, domainerrors.ErrWeakPassword.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrPasswordHashFailed, "registration failed: %v", err)
	}

	newUser := entity.NewUser(input.Email, input.Username, hashedPassword)
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// The existence check above races with concurrent registrations; the
		// store's unique constraint on email is the source of truth.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration lost race on unique email", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		ID:       newUser.ID,
		Email:    newUser.Email,
		Username: newUser.Username,
	}, nil
}

func (srv *authService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to check email availability")
}

// Login verifies credentials and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUnknownEmail.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Password mismatch and inactive accounts share one external signal.
	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if !user.CanLogin() {
		srv.log(ctx).Warn("Login failed, user inactive", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrTokenIssueFailed, "login failed: %v", err)
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresIn:   srv.tokenService.TTL(),
		User:        usecase.NewUserSummary(user),
	}, nil
}

// ResolveCurrentUser authenticates an inbound request from its session token.
func (srv *authService) ResolveCurrentUser(ctx context.Context, token string) (*usecase.UserSummary, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no session token presented")
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrUnauthenticated, "token verification failed: %v", err)
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrMalformedToken.WrapMessage("token has no subject")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrMalformedToken.WrapMessage("token subject is not a user id")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Session token refers to missing user", slog.Any("userID", userID))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("current user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return usecase.NewUserSummary(user), nil
}
