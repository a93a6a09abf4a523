//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"nft-market/internal/pkg/config"
	"nft-market/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// OperatorToken issues a short-lived operator token signed with the test
// secret, for exercising the authenticated admin surface.
func OperatorToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	return tokenWithRole(t, cfg, "ops@example.com", jwt.RoleOperator)
}

func AdminToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	return tokenWithRole(t, cfg, "admin@example.com", jwt.RoleAdmin)
}

func tokenWithRole(t *testing.T, cfg config.Config, subject, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
