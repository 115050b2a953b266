package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/kisan/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "admin", Secret: "test-secret"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	wrapper, err := ParseAuthToken(signed)
	require.NoError(t, err)
	require.Equal(t, "admin", wrapper.UserID)
	require.Equal(t, "test-secret", wrapper.Secret)
	require.NotZero(t, wrapper.ExpiresAt)
}

func TestParseAuthTokenRejectsTampered(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "admin"})
	require.NoError(t, err)

	_, err = ParseAuthToken(signed + "x")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenRejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "admin"})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "other-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	_, err = ParseAuthToken(signed)
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}
