package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// RequireUser gates routes on a signed-in user session; anonymous (or
// admin-only) visitors get bounced to the public home page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := session.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set("uid", uid)
		c.Next()
	}
}

// RequireAdmin gates routes on an admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAdmin(c) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireVerifiedEmail blocks property mutation until the stored
// email_verified flag says Verified. Runs after RequireUser.
func RequireVerifiedEmail(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		status, err := st.EmailVerified(c.Request.Context(), uid)
		if err != nil || status != models.StatusVerified {
			session.Flash(c, session.FlashLight, "Please verify your email before adding home details.")
			c.Redirect(http.StatusFound, "/my-account")
			c.Abort()
			return
		}
		c.Next()
	}
}
