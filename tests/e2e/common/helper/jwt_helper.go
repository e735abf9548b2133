//go:build e2e

package helper

import (
	"testing"

	"franchise-store/internal/domain/user"
	"franchise-store/internal/pkg/config"
	"franchise-store/internal/pkg/jwt"
	"franchise-store/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper signs tokens with the same secret the app under test
// uses, so e2e requests can authenticate without going through login.
type JWTTestHelper struct {
	jwtService *jwt.Service
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{
		jwtService: jwt.NewService(cfg.Secret, cfg.AccessDuration, cfg.RefreshDuration),
	}
}

// CreateUser inserts a user fixture with its profile and loyalty account.
func (h *JWTTestHelper) CreateUser(t *testing.T, pool *pgxpool.Pool, f dbtest.UserFixture) uuid.UUID {
	t.Helper()

	id, err := dbtest.CreateUser(pool, f)
	require.NoError(t, err, "failed to create test user")
	return id
}

// AccessToken issues a bearer token for the given user.
func (h *JWTTestHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.jwtService.GenerateAccessToken(userID, role)
	require.NoError(t, err, "failed to sign access token")
	return token
}
