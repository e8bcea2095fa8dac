package auth

import (
	"context"
	"log"
	"time"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

// Local admin shortcut. It is checked before validation and never reaches
// the provider.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// Gate turns credentials into a Session.
type Gate struct {
	provider Provider
	users    store.Users
	now      func() time.Time
}

func NewGate(provider Provider, users store.Users) *Gate {
	return &Gate{provider: provider, users: users, now: time.Now}
}

// Authenticate logs in, or registers when c.Register is set. Failures are
// *models.ValidationError or *models.AuthError.
func (g *Gate) Authenticate(ctx context.Context, c models.Credentials) (models.Session, error) {
	if c.Email == adminUsername && c.Password == adminPassword {
		log.Printf("👑 Admin session opened")
		return models.Session{Authenticated: true, IsAdmin: true, UserID: models.AdminUserID}, nil
	}

	if err := validate(c); err != nil {
		return models.LoggedOut(), err
	}

	if c.Register {
		return g.register(ctx, c)
	}

	u, err := g.provider.SignIn(ctx, c.Email, c.Password)
	if err != nil {
		return models.LoggedOut(), &models.AuthError{Msg: err.Error(), Err: err}
	}
	email := u.Email
	if email == "" {
		email = c.Email
	}
	return models.Session{Authenticated: true, UserID: u.ID, Email: email}, nil
}

// register creates the account and then its profile record. A failed
// profile write leaves the provider account in place.
func (g *Gate) register(ctx context.Context, c models.Credentials) (models.Session, error) {
	uid, err := g.provider.CreateAccount(ctx, c.Email, c.Password)
	if err != nil {
		return models.LoggedOut(), &models.AuthError{Msg: err.Error(), Err: err}
	}

	profile := models.UserProfile{
		ID:        uid,
		Name:      c.Name,
		Email:     c.Email,
		Role:      models.RoleUser,
		CreatedAt: g.now().UTC(),
	}
	if err := g.users.PutProfile(ctx, profile); err != nil {
		log.Printf("❌ Profile write failed for new account %s: %v", uid, err)
		return models.LoggedOut(), &models.AuthError{Msg: err.Error(), Err: err}
	}

	log.Printf("📝 New user registered: %s", c.Email)
	return models.Session{Authenticated: true, UserID: uid, Email: c.Email}, nil
}

// SignOut ends a provider session. Admin shortcut sessions have nothing to
// revoke.
func (g *Gate) SignOut(ctx context.Context, s models.Session) error {
	if !s.Authenticated || s.UserID == "" || s.UserID == models.AdminUserID {
		return nil
	}
	return g.provider.SignOut(ctx, s.UserID)
}

func validate(c models.Credentials) error {
	if c.Email == "" || c.Password == "" || (c.Register && (c.Name == "" || c.ConfirmPassword == "")) {
		return &models.ValidationError{Msg: "Please fill all fields"}
	}
	if c.Register && c.Password != c.ConfirmPassword {
		return &models.ValidationError{Msg: "Passwords do not match"}
	}
	return nil
}
