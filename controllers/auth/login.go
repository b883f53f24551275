package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/identity"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

func validSignup(name, phone, email, password string) (string, bool) {
	switch {
	case name == "" || phone == "" || email == "" || password == "":
		return "Please enter all details.", false
	case !validation.IsValidName(name):
		return "Please enter a valid name.", false
	case !validation.IsValidPhone(phone):
		return "Invalid phone number.", false
	case !validation.IsValidEmail(email):
		return "Invalid email address.", false
	case !validation.IsValidPassword(password):
		return "Password must be 8+ characters with uppercase, lowercase, number, and special character.", false
	}
	return "", true
}

// GET /login
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.Redirect(http.StatusFound, "/?show=login")
	}
}

// POST /login
func Login(st store.Store, idp identity.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		email := strings.TrimSpace(c.PostForm("email"))
		password := strings.TrimSpace(c.PostForm("password"))

		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email and Password are required."})
			return
		}
		if !validation.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Enter valid email address."})
			return
		}
		if !validation.IsValidPassword(password) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Enter valid password."})
			return
		}

		ctx := c.Request.Context()
		if !st.Alive(ctx) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		sess, err := idp.SignIn(ctx, email, password)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidCredentials) || errors.Is(err, identity.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid email or password."})
				return
			}
			log.Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		if err := session.StartUser(c, sess.UID, sess.IDToken, sess.RefreshToken, email); err != nil {
			log.Error().Err(err).Msg("session save failed")
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "redirect": "/"})
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = session.End(c)
		c.Redirect(http.StatusFound, "/")
	}
}
