package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/models"
)

func TestAuthenticate_AdminShortcutSkipsProvider(t *testing.T) {
	for _, register := range []bool{false, true} {
		p, u := newFakeProvider(), newFakeUsers()
		gate := NewGate(p, u)

		s, err := gate.Authenticate(context.Background(), models.Credentials{
			Email: "admin", Password: "admin123", Register: register,
		})

		require.NoError(t, err)
		assert.True(t, s.Authenticated)
		assert.True(t, s.IsAdmin)
		assert.Equal(t, models.AdminUserID, s.UserID)
		assert.Empty(t, p.calls)
		assert.Zero(t, u.puts)
	}
}

func TestAuthenticate_AdminWrongPasswordGoesToProvider(t *testing.T) {
	p := newFakeProvider()
	gate := NewGate(p, newFakeUsers())

	_, err := gate.Authenticate(context.Background(), models.Credentials{Email: "admin", Password: "nope"})

	var aerr *models.AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "INVALID_PASSWORD", aerr.Msg)
	assert.Equal(t, []string{"signin:admin"}, p.calls)
}

func TestAuthenticate_RegistrationValidation(t *testing.T) {
	full := models.Credentials{Name: "Wanjiru", Email: "w@kula.app", Password: "pw123456", ConfirmPassword: "pw123456", Register: true}
	cases := map[string]func(c *models.Credentials){
		"missing name":     func(c *models.Credentials) { c.Name = "" },
		"missing email":    func(c *models.Credentials) { c.Email = "" },
		"missing password": func(c *models.Credentials) { c.Password = "" },
		"missing confirm":  func(c *models.Credentials) { c.ConfirmPassword = "" },
		"mismatch":         func(c *models.Credentials) { c.ConfirmPassword = "other" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p, u := newFakeProvider(), newFakeUsers()
			creds := full
			mutate(&creds)

			s, err := NewGate(p, u).Authenticate(context.Background(), creds)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.False(t, s.Authenticated)
			assert.Empty(t, p.calls)
			assert.Zero(t, u.puts)
		})
	}
}

func TestAuthenticate_MismatchMessage(t *testing.T) {
	_, err := NewGate(newFakeProvider(), newFakeUsers()).Authenticate(context.Background(), models.Credentials{
		Name: "A", Email: "a@b.c", Password: "one", ConfirmPassword: "two", Register: true,
	})
	assert.EqualError(t, err, "Passwords do not match")
}

func TestAuthenticate_LoginValidation(t *testing.T) {
	p := newFakeProvider()
	_, err := NewGate(p, newFakeUsers()).Authenticate(context.Background(), models.Credentials{Email: "a@b.c"})

	assert.EqualError(t, err, "Please fill all fields")
	assert.Empty(t, p.calls)
}

func TestAuthenticate_RegisterWritesProfile(t *testing.T) {
	p, u := newFakeProvider(), newFakeUsers()
	gate := NewGate(p, u)
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return fixed }

	s, err := gate.Authenticate(context.Background(), models.Credentials{
		Name: "Otieno", Email: "o@kula.app", Password: "secret1", ConfirmPassword: "secret1", Register: true,
	})

	require.NoError(t, err)
	assert.Equal(t, models.Session{Authenticated: true, UserID: "uid-1", Email: "o@kula.app"}, s)
	assert.Equal(t, models.UserProfile{
		ID: "uid-1", Name: "Otieno", Email: "o@kula.app", Role: models.RoleUser, CreatedAt: fixed,
	}, u.profiles["uid-1"])
}

func TestAuthenticate_RegisterProviderFailure(t *testing.T) {
	p, u := newFakeProvider(), newFakeUsers()
	p.createErr = errors.New("EMAIL_EXISTS")

	_, err := NewGate(p, u).Authenticate(context.Background(), models.Credentials{
		Name: "A", Email: "a@b.c", Password: "x", ConfirmPassword: "x", Register: true,
	})

	var aerr *models.AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "EMAIL_EXISTS", aerr.Msg)
	assert.Zero(t, u.puts)
}

func TestAuthenticate_RegisterProfileFailureKeepsAccount(t *testing.T) {
	p, u := newFakeProvider(), newFakeUsers()
	u.putErr = errors.New("permission denied")

	_, err := NewGate(p, u).Authenticate(context.Background(), models.Credentials{
		Name: "A", Email: "a@b.c", Password: "x", ConfirmPassword: "x", Register: true,
	})

	var aerr *models.AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "permission denied", aerr.Msg)
	assert.Contains(t, p.accounts, "a@b.c")
}

func TestAuthenticate_Login(t *testing.T) {
	p := newFakeProvider()
	p.accounts["a@b.c"] = "pw"

	s, err := NewGate(p, newFakeUsers()).Authenticate(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, s.Authenticated)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, "uid-a@b.c", s.UserID)
}

func TestSignOut(t *testing.T) {
	p := newFakeProvider()
	gate := NewGate(p, newFakeUsers())

	require.NoError(t, gate.SignOut(context.Background(), models.Session{Authenticated: true, IsAdmin: true, UserID: models.AdminUserID}))
	require.NoError(t, gate.SignOut(context.Background(), models.LoggedOut()))
	assert.Empty(t, p.calls)

	require.NoError(t, gate.SignOut(context.Background(), models.Session{Authenticated: true, UserID: "u1"}))
	assert.Equal(t, []string{"signout:u1"}, p.calls)
}

func TestReachable(t *testing.T) {
	assert.Equal(t, []Screen{ScreenSignIn}, Reachable(models.LoggedOut()))
	user := models.Session{Authenticated: true, UserID: "u"}
	assert.True(t, CanReach(user, ScreenCart))
	assert.False(t, CanReach(user, ScreenAdmin))
	admin := models.Session{Authenticated: true, IsAdmin: true, UserID: models.AdminUserID}
	assert.True(t, CanReach(admin, ScreenAdmin))
	assert.False(t, CanReach(models.LoggedOut(), ScreenMenu))
}
