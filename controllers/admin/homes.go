package adminController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	propertyControllers "github.com/SumanKr7/CosmoXclub/controllers/property"
	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// GET /all-homes — the moderation queue with the same totals as the
// dashboard.
func AllHomes(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading homes failed")
			session.Flash(c, session.FlashLight, "An error occurred while loading the home data.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		house := store.AdminListings(users)
		counts := countHomes(house)

		c.JSON(http.StatusOK, gin.H{
			"total_users":              len(users),
			"all_users":                house,
			"total_homes":              counts.verified + counts.notVerified,
			"verified_homes_count":     counts.verified,
			"not_verified_homes_count": counts.notVerified,
			"total_members":            counts.members,
			"flash":                    session.TakeFlashes(c),
		})
	}
}

// POST /all-homes — JSON deletes a user's listing, form posts set the house
// status and guest points.
func ModerateHome(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "application/json") {
			deleteUserHome(c, st, imgs)
			return
		}
		updateHomeStatus(c, st)
	}
}

func deleteUserHome(c *gin.Context, st store.Store, imgs images.Service) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing user_id"})
		return
	}

	if err := st.DeleteProperty(c.Request.Context(), req.UserID); err != nil {
		log.Error().Err(err).Str("uid", req.UserID).Msg("home delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error occurred."})
		return
	}
	if err := imgs.RemoveUserUploads(req.UserID); err != nil {
		log.Warn().Err(err).Str("uid", req.UserID).Msg("upload folder removal failed")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func updateHomeStatus(c *gin.Context, st store.Store) {
	defer c.Redirect(http.StatusFound, "/all-homes")

	userID := c.PostForm("user_id")
	newStatus := c.PostForm("dropdown_option")
	guestPointsStr := c.PostForm("guest_points")

	if userID == "" || newStatus == "" || guestPointsStr == "" {
		session.Flash(c, session.FlashLight, "All fields are required.")
		return
	}

	guestPoints, err := strconv.Atoi(guestPointsStr)
	if err != nil {
		session.Flash(c, session.FlashLight, "Guest points must be a valid number.")
		return
	}

	if err := st.UpdateProperty(c.Request.Context(), userID, map[string]interface{}{
		"house_status": newStatus,
		"guest_points": guestPoints,
	}); err != nil {
		log.Error().Err(err).Str("uid", userID).Msg("home status update failed")
		session.Flash(c, session.FlashLight, "An error occurred. Please try again.")
		return
	}

	session.Flash(c, session.FlashSuccess, "Home status and guest points updated successfully.")
}

// GET /admin-home-details/:uid
func HomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading home details failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading home details.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		details, ok := store.AdminListings(users)[c.Param("uid")]
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

// Admin edits require every amenity list to be filled in as well.
var requiredAdminDetailFields = []string{
	"title", "location_type", "property_type", "guest_capacity", "size",
	"bedrooms", "bathrooms", "address", "city", "state",
	"pin_code", "description", "amenities", "unique_facilities",
	"kids_friendly", "eco_friendly_amenities", "house_rules",
	"remote_friendly", "name", "email", "phone",
}

// GET /admin-edit-home-details/:uid
func EditHomeDetails(st store.Store) gin.HandlerFunc {
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

// POST /admin-edit-home-details/:uid — unlike the user's own submission this
// does not reset the moderation status or guest points.
func SubmitHomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()

		if _, err := st.User(ctx, uid); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found."})
			return
		}

		_ = c.Request.ParseForm()
		data := validation.CollectPropertyForm(c.Request.PostForm)

		if validation.Missing(data, requiredAdminDetailFields...) {
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

		data["submitted_at"] = models.Now()

		if err := st.UpdateProperty(ctx, uid, data); err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("admin home details update failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while editing the homes details.")
			c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
			return
		}

		session.Flash(c, session.FlashSuccess, "Home details updated successfully.")
		c.Redirect(http.StatusFound, "/admin-edit-home-details/"+uid)
	}
}

// GET /admin-update-home-images/:uid
func UpdateHomeImages(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()

		user, err := st.User(ctx, uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found."})
			return
		}

		stored, err := st.PropertyImages(ctx, uid)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading home images failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while editing the home images.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "uid": uid, "images": stored, "flash": session.TakeFlashes(c)})
	}
}

// POST /admin-update-home-images/:uid — same add/reconcile dispatch as the
// user-facing route.
func UpdateHomeImagesPost(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyControllers.HandleHomeImagesPost(c, st, imgs, c.Param("uid"))
	}
}
