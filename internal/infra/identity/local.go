package identity

import (
	"context"
	"log/slog"

	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/repository"
	"labgas/internal/domain/service"
	"labgas/internal/errors"
)

// localProvider keeps accounts in the users table with bcrypt hashes.
type localProvider struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewLocalProvider creates a provider backed by the users table.
func NewLocalProvider(userRepo repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) service.IdentityProvider {
	return &localProvider{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := p.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !p.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (p *localProvider) SignUp(ctx context.Context, input *service.SignUpInput) (*entity.User, error) {
	hash, err := p.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         entity.RoleOrDefault(input.Role.String()),
		PasswordHash: hash,
	}

	if err := p.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ResetPassword only records the request; the local store has no mail channel.
func (p *localProvider) ResetPassword(ctx context.Context, email string) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).InfoContext(ctx, "Password reset requested for local account",
		slog.String("email", email),
	)

	return nil
}
