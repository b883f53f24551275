package propertyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// Fields a user must fill when submitting their home. The amenity lists are
// optional here; the admin edit form requires them too.
var requiredDetailFields = []string{
	"title", "location_type", "property_type", "guest_capacity", "size",
	"bedrooms", "bathrooms", "address", "city", "state",
	"pin_code", "description", "name", "email", "phone",
}

// GET /edit-home-details
func EditHomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		user, err := st.User(c.Request.Context(), uid)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading home details failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading your home details.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "flash": session.TakeFlashes(c)})
	}
}

// POST /edit-home-details — every submission goes back to Not Verified for
// re-moderation, regardless of the listing's current status.
func SubmitHomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		_ = c.Request.ParseForm()
		data := validation.CollectPropertyForm(c.Request.PostForm)

		if validation.Missing(data, requiredDetailFields...) {
			session.Flash(c, session.FlashLight, "Please fill out every field.")
			c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
			return
		}

		if ok, errs := validation.ValidateProperty(data, validation.Exchange); !ok {
			for _, msg := range errs {
				session.Flash(c, session.FlashLight, msg)
			}
			c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
			return
		}

		data["house_status"] = models.StatusNotVerified
		data["guest_points"] = 0
		data["submitted_at"] = models.Now()

		ctx := c.Request.Context()
		if err := st.UpdateProperty(ctx, uid, data); err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("home details update failed")
			session.Flash(c, session.FlashLight, "An error occurred while submitting your home details. Please try again later.")
			c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
			return
		}

		stored, err := st.PropertyImages(ctx, uid)
		if err == nil && len(stored) == 0 {
			session.Flash(c, session.FlashLight, "Please upload home images.")
			c.Redirect(http.StatusFound, "/update-home-images")
			return
		}

		session.Flash(c, session.FlashSuccess, "Home details submitted successfully.")
		c.Redirect(http.StatusFound, "/edit-home-details")
	}
}
