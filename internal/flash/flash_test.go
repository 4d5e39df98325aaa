package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carry copies the flash cookie from a response onto a fresh request,
// the way a browser does across a redirect.
func carry(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestSetAndTake(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, "Email already registered.")

	req := carry(t, w)
	w2 := httptest.NewRecorder()

	msg, ok := Take(w2, req)
	require.True(t, ok)
	assert.Equal(t, LevelError, msg.Level)
	assert.Equal(t, "Email already registered.", msg.Text)

	// Take clears the cookie so the message shows once
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestTakeWithoutMessage(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	msg, ok := Take(w, req)
	assert.False(t, ok)
	assert.Nil(t, msg)
}

func TestTakeGarbageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%not-base64%%%"})

	msg, ok := Take(w, req)
	assert.False(t, ok)
	assert.Nil(t, msg)
}

func TestSuccessLevel(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "Account created successfully!")

	msg, ok := Take(httptest.NewRecorder(), carry(t, w))
	require.True(t, ok)
	assert.Equal(t, LevelSuccess, msg.Level)
}
