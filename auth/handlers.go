package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// POST /auth/login
func LoginHandler(gate *Gate, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		authenticate(c, gate, tokens, models.Credentials{
			Email:    req.Email,
			Password: req.Password,
		}, "Login successful")
	}
}

// POST /auth/register
func RegisterHandler(gate *Gate, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		authenticate(c, gate, tokens, models.Credentials{
			Name:            req.Name,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Register:        true,
		}, "Account created!")
	}
}

// POST /auth/logout (token required)
//
// The bearer token is revoked even when the provider sign-out fails.
func LogoutHandler(gate *Gate, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := FromContext(c.Request.Context())
		if err := tokens.Revoke(c.GetString(TokenKey)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if err := gate.SignOut(c.Request.Context(), s); err != nil {
			log.Printf("⚠️ Provider sign-out failed for %s: %v", s.UserID, err)
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "You have been signed out successfully",
			"session": models.LoggedOut(),
			"screens": Reachable(models.LoggedOut()),
		})
	}
}

func authenticate(c *gin.Context, gate *Gate, tokens *Tokens, creds models.Credentials, okMessage string) {
	session, err := gate.Authenticate(c.Request.Context(), creds)
	if err != nil {
		var verr *models.ValidationError
		var aerr *models.AuthError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		case errors.As(err, &aerr):
			c.JSON(http.StatusUnauthorized, gin.H{"error": aerr.Msg})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	token, err := tokens.Issue(session)
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	message := okMessage
	if session.IsAdmin {
		message = "Welcome Admin 👑"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"token":   token,
		"session": session,
		"screens": Reachable(session),
	})
}
