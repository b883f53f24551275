package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/SumanKr7/CosmoXclub/controllers/account"
	authControllers "github.com/SumanKr7/CosmoXclub/controllers/auth"
	propertyControllers "github.com/SumanKr7/CosmoXclub/controllers/property"
	"github.com/SumanKr7/CosmoXclub/middleware"
)

// SetupUserRoutes registers the signed-in member area. Listing management
// additionally requires a verified email address.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireUser())
	{
		userGroup.GET("/my-account", accountControllers.MyAccount(d.Store, d.Verify))
		userGroup.POST("/my-account", accountControllers.MyAccountPost(d.Store, d.Images))

		userGroup.GET("/resend-verification-email", authControllers.ResendVerificationEmail(d.Identity))

		houseGroup := userGroup.Group("/")
		houseGroup.Use(middleware.RequireVerifiedEmail(d.Store))
		{
			houseGroup.GET("/my-home", propertyControllers.MyHome(d.Store))
			houseGroup.POST("/my-home", propertyControllers.DeleteMyHome(d.Store, d.Images))
			houseGroup.GET("/my-home-details", propertyControllers.MyHomeDetails(d.Store))

			houseGroup.GET("/edit-home-details", propertyControllers.EditHomeDetails(d.Store))
			houseGroup.POST("/edit-home-details", propertyControllers.SubmitHomeDetails(d.Store))

			houseGroup.GET("/update-home-images", propertyControllers.UpdateHomeImages(d.Store))
			houseGroup.POST("/update-home-images", propertyControllers.UpdateHomeImagesPost(d.Store, d.Images))
		}
	}
}
