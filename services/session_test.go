package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carryCookies builds a follow-up request holding the recorder's cookies.
// A handler that saves the session more than once emits several Set-Cookie
// headers for the same name; browsers keep the last, so this does too.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, path string) *http.Request {
	t.Helper()
	latest := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		latest[c.Name] = c
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range latest {
		if c.MaxAge < 0 {
			continue
		}
		req.AddCookie(c)
	}
	return req
}

func TestLogInAndCurrentUserID(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.LogIn(rec, req, 42, false))
	require.NotEmpty(t, rec.Result().Cookies())

	id, ok := m.CurrentUserID(carryCookies(t, rec, "/dashboard"))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestCurrentUserIDWithoutSession(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	_, ok := m.CurrentUserID(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.False(t, ok)
}

func TestCurrentUserIDRejectsTamperedCookie(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	require.NoError(t, m.LogIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 42, false))

	cookie := rec.Result().Cookies()[0]
	flipped := strings.ToUpper(cookie.Value[:6]) + cookie.Value[6:]
	if flipped == cookie.Value {
		flipped = strings.ToLower(cookie.Value[:6]) + cookie.Value[6:]
	}
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: flipped})

	_, ok := m.CurrentUserID(req)
	assert.False(t, ok)
}

func TestCurrentUserIDRejectsForeignSecret(t *testing.T) {
	signer := NewSessionManager("one-secret", false)
	verifier := NewSessionManager("another-secret", false)

	rec := httptest.NewRecorder()
	require.NoError(t, signer.LogIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 7, false))

	_, ok := verifier.CurrentUserID(carryCookies(t, rec, "/dashboard"))
	assert.False(t, ok)
}

func TestRememberExtendsCookieLifetime(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	require.NoError(t, m.LogIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 1, false))
	assert.Equal(t, 0, rec.Result().Cookies()[0].MaxAge)

	rec = httptest.NewRecorder()
	require.NoError(t, m.LogIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 1, true))
	assert.Equal(t, rememberMaxAge, rec.Result().Cookies()[0].MaxAge)
}

func TestLogOutInvalidatesSession(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	require.NoError(t, m.LogIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 42, false))

	outReq := carryCookies(t, rec, "/logout")
	outRec := httptest.NewRecorder()
	require.NoError(t, m.LogOut(outRec, outReq))

	// The replacement cookie is expired and carries no identity
	cookie := outRec.Result().Cookies()[0]
	assert.Negative(t, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	_, ok := m.CurrentUserID(req)
	assert.False(t, ok)
}

func TestFlashesPoppedOnce(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	m.Flash(rec, req, "first")
	m.Flash(rec, req, "second")

	nextReq := carryCookies(t, rec, "/signup")
	nextRec := httptest.NewRecorder()
	assert.Equal(t, []string{"first", "second"}, m.Flashes(nextRec, nextReq))

	// Popping saved an emptied session; a request carrying it sees nothing
	finalReq := carryCookies(t, nextRec, "/signup")
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), finalReq))
}
