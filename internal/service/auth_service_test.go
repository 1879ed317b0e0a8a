package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lshigami/studydash/internal/repository"
	"github.com/lshigami/studydash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (AuthService, AccountService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	return NewAuthService(users, repository.NewTokenRepository(db)), NewAccountService(users)
}

func TestLoginIssuesStableToken(t *testing.T) {
	ctx := context.Background()
	auth, accounts := newAuth(t)
	_, created, err := accounts.EnsureAccount(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, created)

	first, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Len(t, first.Token, 40)
	assert.Equal(t, "admin", first.Username)
	assert.Equal(t, "Login successful", first.Message)

	second, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, first.Token, second.Token)

	user, err := auth.Authenticate(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestConcurrentLoginsShareOneToken(t *testing.T) {
	ctx := context.Background()
	auth, accounts := newAuth(t)
	_, _, err := accounts.EnsureAccount(ctx, "admin", "s3cret")
	require.NoError(t, err)

	const logins = 8
	tokens := make([]string, logins)
	errs := make([]error, logins)
	var wg sync.WaitGroup
	for i := 0; i < logins; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := auth.Login(ctx, "admin", "s3cret")
			errs[i] = err
			if err == nil {
				tokens[i] = resp.Token
			}
		}(i)
	}
	wg.Wait()

	distinct := map[string]struct{}{}
	for i := range tokens {
		require.NoError(t, errs[i])
		distinct[tokens[i]] = struct{}{}
	}
	assert.Len(t, distinct, 1)
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	auth, accounts := newAuth(t)
	_, _, err := accounts.EnsureAccount(ctx, "admin", "s3cret")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "admin", "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Username and password required", verr.Message)

	_, err = auth.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	auth, accounts := newAuth(t)
	_, _, err := accounts.EnsureAccount(ctx, "admin", "s3cret")
	require.NoError(t, err)

	login, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, login.Token))
	require.NoError(t, auth.Logout(ctx, login.Token))
	require.NoError(t, auth.Logout(ctx, ""))

	_, err = auth.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	again, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, login.Token, again.Token)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	auth, _ := newAuth(t)
	_, err := auth.Authenticate(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = auth.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEnsureAccountResetsPassword(t *testing.T) {
	ctx := context.Background()
	auth, accounts := newAuth(t)

	first, created, err := accounts.EnsureAccount(ctx, "admin", "old")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := accounts.EnsureAccount(ctx, "admin", "new")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	_, err = auth.Login(ctx, "admin", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "admin", "new")
	assert.NoError(t, err)
}
