package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/auth"
	"github.com/labcrm/crm-api/internal/database"
	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/repository"
)

func newAuthEnv(t *testing.T) *AuthService {
	t.Helper()
	db := database.OpenTest(t)
	clock := dateutil.FixedClock{T: testNow}
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, clock)
	return NewAuthService(repository.NewUserRepository(db), issuer, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthEnv(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	resp, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, testNow.Add(time.Hour), resp.ExpiresAt)

	me, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthEnv(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthEnv(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
