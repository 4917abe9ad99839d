// Package identity checks credentials against the configured account store.
package identity

import (
	"log/slog"

	"labgas/config"
	"labgas/internal/domain/constants"
	"labgas/internal/domain/repository"
	"labgas/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

// NewIdentityProvider selects the provider named by identity.provider.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.IdentityProviderLocal {
		params.Logger.Info("Using local identity provider")

		return NewLocalProvider(params.UserRepo, params.Hasher, params.Logger), nil
	}

	if cfg.Provider != constants.IdentityProviderSupabase {
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}

	if cfg.Supabase == nil || cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		return nil, errors.New("identity.supabase.url and identity.supabase.anonKey are required for supabase provider")
	}

	params.Logger.Info("Using Supabase identity provider",
		slog.String("url", cfg.Supabase.URL),
	)

	return NewSupabaseProvider(cfg.Supabase, params.Logger), nil
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
