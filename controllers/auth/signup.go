package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/identity"
	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

const genericUnavailable = "We're unable to process your request at the moment. Please try again later."

// GET /signup — already signed in goes home, otherwise the home page opens
// its signup modal.
func SignupPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.Redirect(http.StatusFound, "/?show=signup")
	}
}

// POST /signup
func Signup(st store.Store, idp identity.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		name := strings.TrimSpace(c.PostForm("fullname"))
		phone := strings.TrimSpace(c.PostForm("phone"))
		email := strings.TrimSpace(c.PostForm("email"))
		password := strings.TrimSpace(c.PostForm("password"))

		if msg, ok := validSignup(name, phone, email, password); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
			return
		}

		ctx := c.Request.Context()
		if !st.Alive(ctx) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		sess, err := idp.SignUp(ctx, email, password)
		if err != nil {
			if errors.Is(err, identity.ErrEmailExists) {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email already registered."})
				return
			}
			log.Error().Err(err).Msg("signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		if err := session.StartUser(c, sess.UID, sess.IDToken, sess.RefreshToken, email); err != nil {
			log.Error().Err(err).Msg("session save failed")
		}

		user := models.User{
			Name:          name,
			Phone:         phone,
			Email:         email,
			EmailVerified: models.StatusNotVerified,
			SubmittedAt:   models.Now(),
		}
		if err := st.SetUser(ctx, sess.UID, user); err != nil {
			log.Error().Err(err).Str("uid", sess.UID).Msg("user document write failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "redirect": "/"})
	}
}
