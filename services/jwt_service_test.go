package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/services"
)

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, services.InitJWTService("test-secret"))

	token, err := services.GenerateAdminJWT("0192f3a1-0000-7000-8000-000000000001", "admin@respos.dev")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := services.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0192f3a1-0000-7000-8000-000000000001", claims.AdminID)
	assert.Equal(t, "admin@respos.dev", claims.Email)
}

func TestJWTRejectsEmptyClaims(t *testing.T) {
	require.NoError(t, services.InitJWTService("test-secret"))

	_, err := services.GenerateAdminJWT("", "admin@respos.dev")
	assert.Error(t, err)
	_, err = services.GenerateAdminJWT("some-id", "")
	assert.Error(t, err)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	require.NoError(t, services.InitJWTService("test-secret"))

	token, err := services.GenerateAdminJWT("some-id", "admin@respos.dev")
	require.NoError(t, err)

	_, err = services.VerifyAdminJWT(token + "x")
	assert.Error(t, err)
}

func TestJWTRejectsTokenSignedWithDifferentSecret(t *testing.T) {
	require.NoError(t, services.InitJWTService("secret-one"))
	token, err := services.GenerateAdminJWT("some-id", "admin@respos.dev")
	require.NoError(t, err)

	require.NoError(t, services.InitJWTService("secret-two"))
	_, err = services.VerifyAdminJWT(token)
	assert.Error(t, err)
}
