package auth

import (
	"context"

	"github.com/junaidrashid-git/kula-api/models"
)

type sessionKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session carried by ctx, or a logged-out session.
func FromContext(ctx context.Context) models.Session {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	if !ok {
		return models.LoggedOut()
	}
	return s
}
