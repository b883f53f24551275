package routes

import (
	"github.com/gin-gonic/gin"

	publicControllers "github.com/SumanKr7/CosmoXclub/controllers/public"
)

// SetupPublicRoutes registers the pages anyone can reach.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/", publicControllers.Home(d.Store))
	r.POST("/", publicControllers.HomeForm(d.Store, d.Hub))

	r.GET("/contact-us", publicControllers.ContactUs())
	r.POST("/contact-us", publicControllers.ContactUsForm(d.Store, d.Hub))

	r.GET("/home-exchange", publicControllers.HomeExchange(d.Store))
	r.GET("/home-details/:uid", publicControllers.HomeDetails(d.Store))
}
