package adminController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SumanKr7/CosmoXclub/config"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

const genericUnavailable = "We're unable to process your request at the moment. Please try again later."

// GET /admin
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.JSON(http.StatusOK, gin.H{"flash": session.TakeFlashes(c)})
	}
}

// POST /admin — the admin credential is a single configured email plus a
// bcrypt hash; logging in drops any user session.
func Login(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}

		email := strings.TrimSpace(c.PostForm("email"))
		password := strings.TrimSpace(c.PostForm("password"))

		if email == "" && password == "" {
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

		if !st.Alive(c.Request.Context()) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		if email == cfg.AdminEmail &&
			bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil {
			_ = session.StartAdmin(c)
			c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid email or password."})
	}
}
