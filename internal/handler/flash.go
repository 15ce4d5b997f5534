package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

// Register types for gob encoding (used by the flash cookie).
func init() {
	gob.Register(FlashMessage{})
}

// flashCookieName is the cookie backing one-shot notifications.
const flashCookieName = "eso_flash"

// Flash message kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
)

// FlashMessage is a one-shot notification shown on the next rendered page,
// the server-side counterpart of a toast.
type FlashMessage struct {
	Type    string
	Message string
}

// Flash stores one-shot notifications in a signed cookie.
type Flash struct {
	store *sessions.CookieStore
}

// NewFlash creates a flash store. The secret signs the cookie.
func NewFlash(secret string) *Flash {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flash{store: store}
}

// Add queues a message for the next page render.
func (f *Flash) Add(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, _ := f.store.Get(r, flashCookieName)
	sess.AddFlash(FlashMessage{Type: kind, Message: message})
	_ = sess.Save(r, w)
}

// Pop returns and clears all queued messages.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []FlashMessage {
	sess, _ := f.store.Get(r, flashCookieName)

	var messages []FlashMessage
	for _, raw := range sess.Flashes() {
		if msg, ok := raw.(FlashMessage); ok {
			messages = append(messages, msg)
		}
	}
	_ = sess.Save(r, w)
	return messages
}
