package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountControllers "github.com/SumanKr7/CosmoXclub/controllers/account"
	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /edit-user-profile/:uid
func EditUserProfile(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		user, err := st.User(c.Request.Context(), uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "uid": uid, "flash": session.TakeFlashes(c)})
	}
}

// POST /edit-user-profile/:uid — same picture/details dispatch as the user's
// own account page, acting on the targeted uid.
func EditUserProfilePost(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if _, err := st.User(c.Request.Context(), uid); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found."})
			return
		}
		accountControllers.HandleProfilePost(c, st, imgs, uid)
	}
}
