package auth

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

type fakeProvider struct {
	calls      []string
	accounts   map[string]string // email -> password
	createErr  error
	signOutErr error
	nextUID    string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{accounts: map[string]string{}, nextUID: "uid-1"}
}

func (p *fakeProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	p.calls = append(p.calls, "create:"+email)
	if p.createErr != nil {
		return "", p.createErr
	}
	p.accounts[email] = password
	return p.nextUID, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	p.calls = append(p.calls, "signin:"+email)
	if pw, ok := p.accounts[email]; !ok || pw != password {
		return User{}, errors.New("INVALID_PASSWORD")
	}
	return User{ID: "uid-" + email, Email: email}, nil
}

func (p *fakeProvider) SignOut(ctx context.Context, uid string) error {
	p.calls = append(p.calls, "signout:"+uid)
	return p.signOutErr
}

func (p *fakeProvider) CurrentUser(ctx context.Context, uid string) (*User, error) {
	p.calls = append(p.calls, "current:"+uid)
	return nil, nil
}

type fakeUsers struct {
	profiles map[string]models.UserProfile
	putErr   error
	puts     int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{profiles: map[string]models.UserProfile{}}
}

func (u *fakeUsers) PutProfile(ctx context.Context, p models.UserProfile) error {
	u.puts++
	if u.putErr != nil {
		return u.putErr
	}
	u.profiles[p.ID] = p
	return nil
}

func (u *fakeUsers) GetProfile(ctx context.Context, id string) (models.UserProfile, error) {
	p, ok := u.profiles[id]
	if !ok {
		return models.UserProfile{}, store.ErrNotFound
	}
	return p, nil
}
