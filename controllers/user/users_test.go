package userControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/profile"
	"github.com/junaidrashid-git/kula-api/store/memstore"
)

func getUser(t *testing.T, s *memstore.Store, sess models.Session) map[string]json.RawMessage {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), sess))
	})
	r.GET("/user/", GetUser(profile.NewReader(s, nil)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetUser(t *testing.T) {
	s := memstore.New()
	require.NoError(t, s.PutProfile(context.Background(), models.UserProfile{ID: "u1", Name: "Achieng", Email: "a@kula.app", Role: models.RoleUser}))

	resp := getUser(t, s, models.Session{Authenticated: true, UserID: "u1", Email: "a@kula.app"})

	var view profile.View
	require.NoError(t, json.Unmarshal(resp["profile"], &view))
	assert.Equal(t, "Achieng", view.Name)
	assert.Equal(t, profile.DefaultDescription, view.Description)
	assert.JSONEq(t, `["menu","cart","about","profile"]`, string(resp["screens"]))
}

func TestGetUser_Admin(t *testing.T) {
	resp := getUser(t, memstore.New(), models.Session{Authenticated: true, IsAdmin: true, UserID: models.AdminUserID})

	var view profile.View
	require.NoError(t, json.Unmarshal(resp["profile"], &view))
	assert.Equal(t, "Admin", view.Name)
	assert.Contains(t, string(resp["screens"]), `"admin"`)
}
