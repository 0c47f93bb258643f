package services

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "roster-session"
	userIDKey   = "user_id"

	// "Remember me" keeps the cookie alive this long; without it the cookie
	// is scoped to the browser session.
	rememberMaxAge = 86400 * 30
)

// SessionManager wraps a signed-cookie session store. The cookie payload
// carries the authenticated user id; securecookie adds the HMAC integrity tag
// and creation timestamp that are verified before the id is trusted.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string, secure bool) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// LogIn binds the session cookie to the given user id.
func (m *SessionManager) LogIn(w http.ResponseWriter, r *http.Request, userID int64, remember bool) error {
	// A tampered or expired cookie still yields a fresh session, so the
	// decode error is deliberately ignored here.
	session, _ := m.store.Get(r, sessionName)
	session.Values[userIDKey] = userID
	if remember {
		session.Options.MaxAge = rememberMaxAge
	} else {
		session.Options.MaxAge = 0
	}
	return session.Save(r, w)
}

// CurrentUserID resolves the authenticated user id from the request's session
// cookie. The boolean is false for missing, tampered or anonymous sessions.
func (m *SessionManager) CurrentUserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	v, ok := session.Values[userIDKey]
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// LogOut invalidates the current session cookie.
func (m *SessionManager) LogOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values = make(map[any]any)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Flash queues a one-shot message for the next rendered page.
func (m *SessionManager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		slog.Warn("Failed to save flash message", "error", err)
	}
}

// Flashes pops all queued flash messages.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		slog.Warn("Failed to clear flash messages", "error", err)
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
