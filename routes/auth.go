package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/SumanKr7/CosmoXclub/controllers/auth"
)

// SetupAuthRoutes registers signup, login, and the password/verification
// flows handed off to the identity provider.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	r.GET("/signup", authControllers.SignupPage())
	r.POST("/signup", authControllers.Signup(d.Store, d.Identity))

	r.GET("/login", authControllers.LoginPage())
	r.POST("/login", authControllers.Login(d.Store, d.Identity))
	r.GET("/logout", authControllers.Logout())

	r.POST("/forgot-password", authControllers.ForgotPassword(d.Store, d.Identity))
	r.GET("/email-action", authControllers.EmailAction(d.Cfg))
}
