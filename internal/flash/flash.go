// Package flash carries one-shot user-facing messages across a redirect
// using a short-lived cookie, read and cleared by the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Message is one user-facing outcome line.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func Success(w http.ResponseWriter, text string) {
	set(w, Message{Level: LevelSuccess, Text: text})
}

func Error(w http.ResponseWriter, text string) {
	set(w, Message{Level: LevelError, Text: text})
}

func set(w http.ResponseWriter, m Message) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take returns the pending message, if any, and clears the cookie so the
// message renders exactly once.
func Take(w http.ResponseWriter, r *http.Request) (*Message, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil, false
	}

	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}

	return &m, true
}
