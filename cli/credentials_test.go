package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/models"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KULA_TOKEN", "")
	return home
}

func TestTokenRoundTrip(t *testing.T) {
	home := isolateHome(t)

	ti, err := GetToken()
	require.NoError(t, err)
	assert.Nil(t, ti)

	sess := models.Session{Authenticated: true, UserID: "u1", Email: "a@kula.app"}
	require.NoError(t, SetToken("Bearer abc.def", sess))

	info, err := os.Stat(filepath.Join(home, ".kula", "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	ti, err = GetToken()
	require.NoError(t, err)
	require.NotNil(t, ti)
	assert.Equal(t, "abc.def", ti.Token)
	assert.Equal(t, "file", ti.Source)
	assert.Equal(t, sess, ti.Session)

	require.NoError(t, DeleteToken())
	require.NoError(t, DeleteToken())
	ti, err = GetToken()
	require.NoError(t, err)
	assert.Nil(t, ti)
}

func TestTokenFromEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("KULA_TOKEN", "bearer xyz")

	ti, err := GetToken()
	require.NoError(t, err)
	assert.Equal(t, "xyz", ti.Token)
	assert.Equal(t, "env", ti.Source)
}

func TestSetTokenRejectsEmpty(t *testing.T) {
	isolateHome(t)
	assert.Error(t, SetToken("  ", models.Session{}))
}
