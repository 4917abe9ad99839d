package auth

import (
	"testing"
	"time"

	"labgas/config"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Token: secret,
			TTL:   ttl,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 0))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, "lab@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "lab@example.com", identity.Email)
}

func TestJWTService_NoExpiryByDefault(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 0))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "lab@example.com")
	require.NoError(t, err)

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := svc.Issue(uuid.New(), "lab@example.com")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredCredential))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 0))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other, err := NewJWTService(newTestConfig("another_secret_key_for_signing", 0))
				require.NoError(t, err)
				token, err := other.Issue(uuid.New(), "lab@example.com")
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, service.Claims{
					UserID: uuid.NewString(),
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "user id is not a uuid",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
					UserID: "42",
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Verify(tt.token(t))
			require.Error(t, err)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
		})
	}
}

func TestJWTService_ConfigValidation(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	svc, err = NewJWTService(newTestConfig(testSecret, -time.Second))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
