package authControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/config"
	"github.com/SumanKr7/CosmoXclub/identity"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// POST /forgot-password
func ForgotPassword(st store.Store, idp identity.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		email := strings.TrimSpace(c.PostForm("email"))
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required."})
			return
		}
		if !validation.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Enter valid email address."})
			return
		}

		ctx := c.Request.Context()
		if !st.Alive(ctx) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": genericUnavailable})
			return
		}

		registered, err := store.IsEmailRegistered(ctx, st, email)
		if err != nil || !registered {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Email not registered. Please enter your registered email."})
			return
		}

		if err := idp.SendPasswordReset(ctx, email); err != nil {
			log.Error().Err(err).Msg("password reset mail failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to send password reset email. Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Password reset email sent successfully!"})
	}
}

// GET /resend-verification-email — refreshes the cached id token when it has
// gone stale, then asks the provider for a fresh verification mail.
func ResendVerificationEmail(idp identity.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, signedIn := session.CurrentUser(c)
		idToken, refreshToken := session.Tokens(c)
		if !signedIn || idToken == "" || refreshToken == "" {
			session.Flash(c, session.FlashLight, "Please log in to verify your email.")
			c.Redirect(http.StatusFound, "/?show=login")
			return
		}

		ctx := c.Request.Context()

		if identity.Stale(idToken) {
			if tokens, err := idp.Refresh(ctx, refreshToken); err == nil {
				idToken = tokens.IDToken
				_ = session.SetTokens(c, tokens.IDToken, tokens.RefreshToken)
			} else {
				log.Warn().Err(err).Msg("token refresh failed, trying cached token")
			}
		}

		if err := idp.SendEmailVerification(ctx, idToken); err != nil {
			log.Error().Err(err).Msg("verification mail failed")
			session.Flash(c, session.FlashLight, "Failed to send verification email")
		} else {
			session.Flash(c, session.FlashSuccess, "Verification email sent successfully. Please check your inbox.")
		}

		c.Redirect(http.StatusFound, "/my-account")
	}
}

// GET /email-action — landing data for the provider's mailed links.
func EmailAction(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := c.Query("mode")
		oobCode := c.Query("oobCode")

		firebaseConfig := gin.H{
			"apiKey":     cfg.FirebaseAPIKey,
			"authDomain": cfg.FirebaseAuthDomain,
		}

		switch mode {
		case "verifyEmail":
			c.JSON(http.StatusOK, gin.H{"mode": mode, "firebase_config": firebaseConfig})
		case "resetPassword":
			c.JSON(http.StatusOK, gin.H{"mode": mode, "firebase_config": firebaseConfig, "oob_code": oobCode})
		default:
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Invalid action."})
		}
	}
}
