package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider keeps accounts in memory with bcrypt password hashes. It is
// for local runs without a Firebase project; accounts do not survive a
// restart.
type LocalProvider struct {
	mu       sync.RWMutex
	byEmail  map[string]localAccount
	emailFor map[string]string
}

type localAccount struct {
	uid  string
	hash []byte
}

var _ Provider = (*LocalProvider)(nil)

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		byEmail:  make(map[string]localAccount),
		emailFor: make(map[string]string),
	}
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	email = normalizeEmail(email)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.byEmail[email]; ok {
		return "", errors.New("EMAIL_EXISTS")
	}
	uid := uuid.NewString()
	p.byEmail[email] = localAccount{uid: uid, hash: hash}
	p.emailFor[uid] = email
	return uid, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	p.mu.RLock()
	acct, ok := p.byEmail[email]
	p.mu.RUnlock()
	if !ok || !checkPasswordHash(password, acct.hash) {
		return User{}, errors.New("INVALID_LOGIN_CREDENTIALS")
	}
	return User{ID: acct.uid, Email: email}, nil
}

// SignOut has nothing to revoke: sessions live in the client's token.
func (p *LocalProvider) SignOut(ctx context.Context, uid string) error { return nil }

func (p *LocalProvider) CurrentUser(ctx context.Context, uid string) (*User, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	email, ok := p.emailFor[uid]
	if !ok {
		return nil, nil
	}
	return &User{ID: uid, Email: email}, nil
}

// Emails are matched case-insensitively, as Firebase does.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func checkPasswordHash(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
