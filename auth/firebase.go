package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// NewFirebaseApp initializes Firebase from a service-account JSON blob.
func NewFirebaseApp(ctx context.Context, credentialsJSON, projectID string) (*firebase.App, error) {
	if credentialsJSON == "" || projectID == "" {
		return nil, errors.New("firebase credentials and project id are required")
	}
	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	log.Printf("🔥 Firebase app ready for project %s", projectID)
	return app, nil
}

// FirebaseProvider creates and revokes accounts with the Admin SDK and
// verifies passwords through the Identity Toolkit API, which the Admin SDK
// does not expose.
type FirebaseProvider struct {
	client   *fbauth.Client
	identity *identitytoolkit.Service
}

var _ Provider = (*FirebaseProvider)(nil)

func NewFirebaseProvider(ctx context.Context, app *firebase.App, apiKey string) (*FirebaseProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	identity, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity toolkit client: %w", err)
	}
	return &FirebaseProvider{client: client, identity: identity}, nil
}

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	u, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return u.UID, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	resp, err := p.identity.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Message != "" {
			return User{}, errors.New(gerr.Message)
		}
		return User{}, err
	}
	return User{ID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName}, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context, uid string) error {
	return p.client.RevokeRefreshTokens(ctx, uid)
}

func (p *FirebaseProvider) CurrentUser(ctx context.Context, uid string) (*User, error) {
	u, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &User{ID: u.UID, Email: u.Email, DisplayName: u.DisplayName}, nil
}
