// Package profile reads the signed-in user's profile with the defaults the
// app shows when fields of the users record are missing.
package profile

import (
	"context"
	"errors"
	"log"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

const (
	DefaultName        = "Kula User"
	DefaultGreeting    = "User"
	DefaultDescription = "Welcome to Kula Platform!"
)

// View is the profile screen.
type View struct {
	Name        string `json:"name"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Role        string `json:"role"`
	// Greeting is the name used by the menu screen ("Hi <Greeting>").
	Greeting string `json:"greeting"`
}

type Reader struct {
	users    store.Users
	provider auth.Provider
}

func NewReader(users store.Users, provider auth.Provider) *Reader {
	return &Reader{users: users, provider: provider}
}

// Load never fails. Without a users record, or when reading it fails, the view
// carries only the session email, the provider display name and the "User"
// greeting; name and description defaults apply to an existing record only.
func (r *Reader) Load(ctx context.Context, s models.Session) View {
	v := View{Email: s.Email, Role: s.Role(), Greeting: DefaultGreeting}

	if s.IsAdmin {
		v.Name = "Admin"
		v.Description = DefaultDescription
		return v
	}

	var displayName string
	if r.provider != nil && s.UserID != "" {
		u, err := r.provider.CurrentUser(ctx, s.UserID)
		if err != nil {
			log.Printf("⚠️ Error fetching account %s: %v", s.UserID, err)
		} else if u != nil {
			displayName = u.DisplayName
			if v.Email == "" {
				v.Email = u.Email
			}
		}
	}
	v.Name = displayName

	p, err := r.users.GetProfile(ctx, s.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("⚠️ Error fetching user %s: %v", s.UserID, err)
		}
		return v
	}

	v.Name = firstNonEmpty(p.Name, displayName, DefaultName)
	v.Username = p.Username
	v.Email = firstNonEmpty(p.Email, v.Email)
	v.Description = firstNonEmpty(p.Description, DefaultDescription)
	v.Greeting = firstNonEmpty(p.Name, DefaultGreeting)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
