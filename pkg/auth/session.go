package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// Store is the global session store for logged-in users.
var Store *sessions.CookieStore

// SessionName is the name of the login session cookie.
const SessionName = "vouch4food-session"

// SessionKeyUserID is the session value holding the logged-in user's id.
const SessionKeyUserID = "user_id"

// sessionMaxAge keeps users logged in for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// InitSessionStore initializes the cookie-based session store.
//
// The secret parameter is used to sign session cookies. It can be any
// passphrase - it will be SHA-256 hashed to derive a 32-byte key.
// The secret must be consistent across server restarts and multiple
// servers in a load-balanced deployment.
//
// secure should be true in production so the cookie is only sent over HTTPS.
func InitSessionStore(secret string, secure bool) {
	// Hash the secret to get a consistent 32-byte key
	key := sha256.Sum256([]byte(secret))

	Store = sessions.NewCookieStore(key[:])
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// GetSession retrieves the login session from the request.
// Creates a new session if one doesn't exist.
func GetSession(r *http.Request) (*sessions.Session, error) {
	return Store.Get(r, SessionName)
}

// LogIn records the user id in the session and writes the cookie.
func LogIn(r *http.Request, w http.ResponseWriter, userID int64) error {
	session, err := GetSession(r)
	if err != nil {
		return err
	}
	session.Values[SessionKeyUserID] = userID
	return session.Save(r, w)
}

// LogOut clears the session cookie.
func LogOut(r *http.Request, w http.ResponseWriter) error {
	session, err := GetSession(r)
	if err != nil {
		return err
	}
	delete(session.Values, SessionKeyUserID)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// SessionUserID returns the logged-in user's id from the request session.
// Returns 0 and false when the request carries no valid login.
func SessionUserID(r *http.Request) (int64, bool) {
	session, err := GetSession(r)
	if err != nil {
		return 0, false
	}
	userID, ok := session.Values[SessionKeyUserID].(int64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
