// Package session is the cookie-session layer: a server-signed, client-held
// cookie carrying the signed-in identity (user or admin, never both) and
// one-time flash messages.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Name of the session cookie.
const Name = "cosmoxclub"

const (
	keyUser         = "user"
	keyAdmin        = "admin-user"
	keyIDToken      = "id_token"
	keyRefreshToken = "refresh_token"
	keyEmail        = "email"
)

// Flash levels match the front-end styling hooks.
const (
	FlashSuccess = "success"
	FlashLight   = "light"
)

// FlashMessage is a one-time notice rendered on the next page view.
type FlashMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// CurrentUser returns the signed-in user's uid, if any.
func CurrentUser(c *gin.Context) (string, bool) {
	uid, ok := sessions.Default(c).Get(keyUser).(string)
	return uid, ok && uid != ""
}

// IsAdmin reports whether this is an admin session.
func IsAdmin(c *gin.Context) bool {
	v, ok := sessions.Default(c).Get(keyAdmin).(string)
	return ok && v != ""
}

// StartUser establishes a user session. Any admin session in the cookie is
// dropped: the two are mutually exclusive.
func StartUser(c *gin.Context, uid, idToken, refreshToken, email string) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(keyUser, uid)
	s.Set(keyIDToken, idToken)
	s.Set(keyRefreshToken, refreshToken)
	s.Set(keyEmail, email)
	return s.Save()
}

// StartAdmin establishes an admin session, dropping any user session.
func StartAdmin(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(keyAdmin, "admin")
	return s.Save()
}

// End clears the session entirely.
func End(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// Tokens returns the cached provider tokens for the signed-in user.
func Tokens(c *gin.Context) (idToken, refreshToken string) {
	s := sessions.Default(c)
	idToken, _ = s.Get(keyIDToken).(string)
	refreshToken, _ = s.Get(keyRefreshToken).(string)
	return idToken, refreshToken
}

// SetTokens replaces the cached provider tokens after a refresh exchange.
func SetTokens(c *gin.Context, idToken, refreshToken string) error {
	s := sessions.Default(c)
	s.Set(keyIDToken, idToken)
	s.Set(keyRefreshToken, refreshToken)
	return s.Save()
}

// Email returns the email the session was signed in with.
func Email(c *gin.Context) string {
	email, _ := sessions.Default(c).Get(keyEmail).(string)
	return email
}

// Flash queues a one-time message for the next page payload.
func Flash(c *gin.Context, level, message string) {
	s := sessions.Default(c)
	s.AddFlash(message, level)
	_ = s.Save()
}

// TakeFlashes drains and returns all pending flash messages.
func TakeFlashes(c *gin.Context) []FlashMessage {
	s := sessions.Default(c)
	var out []FlashMessage
	for _, level := range []string{FlashSuccess, FlashLight} {
		for _, v := range s.Flashes(level) {
			if msg, ok := v.(string); ok {
				out = append(out, FlashMessage{Level: level, Message: msg})
			}
		}
	}
	_ = s.Save()
	return out
}
