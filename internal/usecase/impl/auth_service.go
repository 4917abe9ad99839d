package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"
	"labgas/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	identity     service.IdentityProvider
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity     service.IdentityProvider
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identity:     params.Identity,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials with the identity provider and issues an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.identity.SignIn(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// Register creates an account. An empty role becomes viewer.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a senha deve ter pelo menos 6 caracteres")
	}

	role := entity.RoleViewer
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("perfil deve ser viewer ou admin")
		}
	}

	user, err := srv.identity.SignUp(ctx, &service.SignUpInput{
		Email:    email,
		Password: input.Password,
		Name:     strings.TrimSpace(input.Name),
		Role:     role,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "registration failed")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// ResetPassword asks the identity provider to start password recovery.
func (srv *authService) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email é obrigatório")
	}

	return errors.Wrap(srv.identity.ResetPassword(ctx, email), "password reset failed")
}
