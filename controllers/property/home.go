package propertyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /my-home
func MyHome(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		user, err := st.User(c.Request.Context(), uid)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading home failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading your home.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"uid":   uid,
			"flash": session.TakeFlashes(c),
		})
	}
}

// POST /my-home — deletes the listing document and the upload folder.
func DeleteMyHome(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		if err := st.DeleteProperty(c.Request.Context(), uid); err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("home delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting home. Please try again later."})
			return
		}
		if err := imgs.RemoveUserUploads(uid); err != nil {
			log.Warn().Err(err).Str("uid", uid).Msg("upload folder removal failed")
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
