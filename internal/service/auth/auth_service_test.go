package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/store"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, &domain.RegisterRequest{Username: "ram", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ram", user.Username)
	require.Equal(t, domain.LanguageEnglish, user.Language)

	// the stored credential is a bcrypt hash, not the password
	require.NotEqual(t, "pw123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))

	logged, err := svc.Login(ctx, &domain.LoginRequest{Username: "ram", Password: "pw123"})
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	_, err := svc.Register(ctx, &domain.RegisterRequest{Username: "ram", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &domain.RegisterRequest{Username: "ram", Password: "other"})
	require.ErrorIs(t, err, constants.ErrUsernameTaken)

	// no second record was created
	user, err := st.GetUserByUsername(ctx, "ram")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &domain.RegisterRequest{Username: "sita", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &domain.LoginRequest{Username: "sita", Password: "wrong"})
	require.ErrorIs(t, err, constants.ErrInvalidCreds)

	_, err = svc.Login(ctx, &domain.LoginRequest{Username: "nobody", Password: "secret"})
	require.ErrorIs(t, err, constants.ErrInvalidCreds)
}
