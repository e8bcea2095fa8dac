package auth

import "github.com/junaidrashid-git/kula-api/models"

// Screen names a part of the client that a session may reach.
type Screen string

const (
	ScreenSignIn  Screen = "signin"
	ScreenMenu    Screen = "menu"
	ScreenCart    Screen = "cart"
	ScreenAbout   Screen = "about"
	ScreenProfile Screen = "profile"
	ScreenAdmin   Screen = "admin"
)

// Reachable lists the screens open to s.
func Reachable(s models.Session) []Screen {
	if !s.Authenticated {
		return []Screen{ScreenSignIn}
	}
	screens := []Screen{ScreenMenu, ScreenCart, ScreenAbout, ScreenProfile}
	if s.IsAdmin {
		screens = append(screens, ScreenAdmin)
	}
	return screens
}

// CanReach reports whether screen is open to s.
func CanReach(s models.Session, screen Screen) bool {
	for _, r := range Reachable(s) {
		if r == screen {
			return true
		}
	}
	return false
}
