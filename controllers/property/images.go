package propertyControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /update-home-images
func UpdateHomeImages(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		stored, err := st.PropertyImages(c.Request.Context(), uid)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading home images failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while uploading home images.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": stored, "flash": session.TakeFlashes(c)})
	}
}

// POST /update-home-images
func UpdateHomeImagesPost(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleHomeImagesPost(c, st, imgs, c.GetString("uid"))
	}
}

// HandleHomeImagesPost dispatches an image form post: a cropped_image1 field
// adds a new image, anything else reconciles against the keep list. Shared
// with the admin's update-home-images route.
func HandleHomeImagesPost(c *gin.Context, st store.Store, imgs images.Service, uid string) {
	if c.PostForm("cropped_image1") != "" {
		addHomeImage(c, st, imgs, uid)
		return
	}
	reconcileHomeImages(c, st, imgs, uid)
}

// addHomeImage appends a freshly uploaded image and drops the listing back
// to Not Verified so an admin re-approves it.
func addHomeImage(c *gin.Context, st store.Store, imgs images.Service, uid string) {
	defer c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
	ctx := c.Request.Context()

	url, err := imgs.SaveHomeImage(uid, c.PostForm("cropped_image1"))
	if err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("home image save failed")
		session.Flash(c, session.FlashLight, "Error uploading image. Please try again later.")
		return
	}

	stored, err := st.PropertyImages(ctx, uid)
	if err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("loading home images failed")
		session.Flash(c, session.FlashLight, "Error uploading image. Please try again later.")
		return
	}

	if err := st.SetPropertyImages(ctx, uid, append(stored, url)); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("home images update failed")
		session.Flash(c, session.FlashLight, "Error uploading image. Please try again later.")
		return
	}
	if err := st.SetHouseStatus(ctx, uid, models.StatusNotVerified); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("house status reset failed")
	}

	session.Flash(c, session.FlashSuccess, "Image uploaded successfully!")
}

// reconcileHomeImages makes the stored list match the client's keep list;
// files that fall off the list are removed from disk after the document
// write lands. An unparsable keep list clears everything.
func reconcileHomeImages(c *gin.Context, st store.Store, imgs images.Service, uid string) {
	defer c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
	ctx := c.Request.Context()

	stored, err := st.PropertyImages(ctx, uid)
	if err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("loading home images failed")
		session.Flash(c, session.FlashLight, "Error updating homes images. Please try again later.")
		return
	}

	keepJSON := c.DefaultPostForm("images_to_keep", "[]")
	var keep []string
	if err := json.Unmarshal([]byte(keepJSON), &keep); err != nil {
		keep = []string{}
		session.Flash(c, session.FlashLight, "Invalid image data submitted.")
	}

	if err := st.SetPropertyImages(ctx, uid, keep); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("home images update failed")
		session.Flash(c, session.FlashLight, "Error updating homes images. Please try again later.")
		return
	}

	imgs.DeleteFiles(images.Removed(stored, keep))
	session.Flash(c, session.FlashSuccess, "Images updated successfully!")
}
