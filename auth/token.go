package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/junaidrashid-git/kula-api/models"
)

// TokenKey is the gin context key under which ValidateToken leaves the raw
// bearer token.
const TokenKey = "token"

// Tokens signs sessions into HS256 JWTs and reads them back. Revoked token
// ids are remembered in memory until the token would have expired anyway.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> exp
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (t *Tokens) Issue(s models.Session) (string, error) {
	if !s.Authenticated {
		return "", errors.New("cannot issue a token for a logged-out session")
	}
	now := t.now()
	claims := jwt.MapClaims{
		"jti":     uuid.NewString(),
		"user_id": s.UserID,
		"email":   s.Email,
		"role":    s.Role(),
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Parse(tokenString string) (models.Session, error) {
	claims, err := t.claims(tokenString)
	if err != nil {
		return models.LoggedOut(), err
	}
	jti, _ := claims["jti"].(string)
	if t.isRevoked(jti) {
		return models.LoggedOut(), errors.New("token has been revoked")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return models.LoggedOut(), errors.New("token has no user")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return models.Session{
		Authenticated: true,
		IsAdmin:       role == models.RoleAdmin,
		UserID:        userID,
		Email:         email,
	}, nil
}

// Revoke makes tokenString unusable for the rest of its lifetime.
func (t *Tokens) Revoke(tokenString string) error {
	claims, err := t.claims(tokenString)
	if err != nil {
		return err
	}
	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return errors.New("token has no expiry")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for id, until := range t.revoked {
		if now.After(until) {
			delete(t.revoked, id)
		}
	}
	t.revoked[jti] = exp.Time
	return nil
}

func (t *Tokens) isRevoked(jti string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.revoked[jti]
	return ok
}

func (t *Tokens) claims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		return nil, errors.New("token has no id")
	}
	return claims, nil
}
