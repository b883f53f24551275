package propertyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// GET /my-home-details — the user's own listing, whatever its moderation
// state.
func MyHomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading home details failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading your home details.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		details, ok := store.AdminListings(users)[uid]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Home not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"house_details": details,
			"amenity_icons": validation.AmenityIcons,
		})
	}
}
