package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/SumanKr7/CosmoXclub/controllers/admin"
	"github.com/SumanKr7/CosmoXclub/middleware"
)

// SetupAdminRoutes registers the admin console. Login itself is open, the
// rest sits behind the admin session.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	r.GET("/admin", adminController.LoginPage())
	r.POST("/admin", adminController.Login(d.Cfg, d.Store))

	adminGroup := r.Group("/")
	adminGroup.Use(middleware.RequireAdmin())
	{
		adminGroup.GET("/dashboard", adminController.Dashboard(d.Store))

		// Listing moderation
		adminGroup.GET("/all-homes", adminController.AllHomes(d.Store))
		adminGroup.POST("/all-homes", adminController.ModerateHome(d.Store, d.Images))
		adminGroup.GET("/admin-home-details/:uid", adminController.HomeDetails(d.Store))
		adminGroup.GET("/admin-edit-home-details/:uid", adminController.EditHomeDetails(d.Store))
		adminGroup.POST("/admin-edit-home-details/:uid", adminController.SubmitHomeDetails(d.Store))
		adminGroup.GET("/admin-update-home-images/:uid", adminController.UpdateHomeImages(d.Store))
		adminGroup.POST("/admin-update-home-images/:uid", adminController.UpdateHomeImagesPost(d.Store, d.Images))

		// User management
		adminGroup.GET("/edit-user-profile/:uid", adminController.EditUserProfile(d.Store))
		adminGroup.POST("/edit-user-profile/:uid", adminController.EditUserProfilePost(d.Store, d.Images))
		adminGroup.GET("/export/users.xlsx", adminController.ExportUsersToExcel(d.Store))

		// Memberships and inquiries
		adminGroup.GET("/update-membership", adminController.UpdateMembership(d.Store))
		adminGroup.POST("/update-membership", adminController.UpdateMembershipPost(d.Store))
		adminGroup.GET("/membership-request", adminController.MembershipRequest(d.Store))
		adminGroup.POST("/membership-request", adminController.MembershipRequestPost(d.Store))
		adminGroup.GET("/contact-form", adminController.ContactForm(d.Store))
		adminGroup.POST("/contact-form", adminController.ContactFormPost(d.Store))

		// Live new-submission feed for the console
		adminGroup.GET("/notifications", d.Hub.Handler())
	}
}
