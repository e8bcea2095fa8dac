package auth

import "context"

// User is what the auth provider knows about an account.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// Provider is the external authentication service. Error messages are shown
// to the user as-is.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (User, error)
	SignOut(ctx context.Context, uid string) error
	// CurrentUser returns nil when the account does not exist.
	CurrentUser(ctx context.Context, uid string) (*User, error)
}
