package models

// AdminUserID is the principal id carried by sessions created through the
// local admin shortcut. It never exists in the auth provider.
const AdminUserID = "admin"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the client-local view of who is signed in.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	IsAdmin       bool   `json:"is_admin"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
}

// LoggedOut is the initial session of every client.
func LoggedOut() Session { return Session{} }

// Role returns the role claim stored in session tokens.
func (s Session) Role() string {
	if s.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Credentials is the input of both login and registration. Email doubles as
// the admin username.
type Credentials struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Register        bool   `json:"-"`
}
