package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/services"
)

func TestPasswordHashAndVerify(t *testing.T) {
	auth := services.GetAdminAuthService()

	hash, err := auth.HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, auth.VerifyPassword(hash, "hunter2-but-longer"))
	assert.False(t, auth.VerifyPassword(hash, "wrong-password"))
}

func TestValidatePasswordMinLength(t *testing.T) {
	auth := services.GetAdminAuthService()
	assert.False(t, auth.ValidatePassword("12345"))
	assert.True(t, auth.ValidatePassword("123456"))
}

func TestHashTokenIsStableAndOpaque(t *testing.T) {
	auth := services.GetAdminAuthService()

	h1 := auth.HashToken("some-token")
	h2 := auth.HashToken("some-token")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // sha256 hex
	assert.NotEqual(t, h1, auth.HashToken("other-token"))
}

func TestGetAdminStatus(t *testing.T) {
	auth := services.GetAdminAuthService()

	recent := time.Now().Add(-time.Hour)
	stale := time.Now().AddDate(0, 0, -8)

	assert.Equal(t, "suspended", auth.GetAdminStatus("suspended", &recent))
	assert.Equal(t, "active", auth.GetAdminStatus("active", &recent))
	assert.Equal(t, "inactive", auth.GetAdminStatus("active", &stale))
	assert.Equal(t, "active", auth.GetAdminStatus("active", nil))
}
