package accountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/authn"
	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// GET /my-account — account payload, syncing the stored email_verified flag
// against the live provider state.
func MyAccount(st store.Store, verify authn.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		uid := c.GetString("uid")

		if !st.Alive(ctx) {
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading your account details.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		user, err := st.User(ctx, uid)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("loading account failed")
			session.Flash(c, session.FlashLight, "An unexpected error occurred while loading your account details.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		idToken, _ := session.Tokens(c)
		emailVerified := verify.EmailVerified(ctx, idToken)

		if user.EmailVerified == models.StatusNotVerified && emailVerified {
			if err := st.UpdateUser(ctx, uid, map[string]interface{}{
				"email_verified": models.StatusVerified,
			}); err == nil {
				user.EmailVerified = models.StatusVerified
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"user":           user,
			"email_verified": emailVerified,
			"flash":          session.TakeFlashes(c),
		})
	}
}

// POST /my-account
func MyAccountPost(st store.Store, imgs images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleProfilePost(c, st, imgs, c.GetString("uid"))
	}
}

// HandleProfilePost dispatches a profile form post: a cropped_image field
// means an image upload, anything else is a details update. Shared with the
// admin's edit-user-profile route.
func HandleProfilePost(c *gin.Context, st store.Store, imgs images.Service, uid string) {
	if c.PostForm("cropped_image") != "" {
		updateProfileImage(c, st, imgs, uid)
		return
	}
	updateProfileDetails(c, st, uid)
}

func updateProfileImage(c *gin.Context, st store.Store, imgs images.Service, uid string) {
	defer c.Redirect(http.StatusFound, c.Request.URL.RequestURI())

	url, err := imgs.SaveProfileImage(uid, c.PostForm("cropped_image"))
	if err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("profile image save failed")
		session.Flash(c, session.FlashLight, "Error updating profile images. Please try again later.")
		return
	}

	if err := st.UpdateUser(c.Request.Context(), uid, map[string]interface{}{
		"profile_image": url,
	}); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("profile image update failed")
		session.Flash(c, session.FlashLight, "Error updating profile images. Please try again later.")
		return
	}

	session.Flash(c, session.FlashSuccess, "Profile image updated successfully!")
}

func updateProfileDetails(c *gin.Context, st store.Store, uid string) {
	defer c.Redirect(http.StatusFound, c.Request.URL.RequestURI())

	_ = c.Request.ParseForm()
	profile := validation.CollectProfileForm(c.Request.PostForm)

	for _, v := range profile {
		if v == "" {
			session.Flash(c, session.FlashLight, "Please fill out every field.")
			return
		}
	}

	ok, errs := validation.ValidateProfile(profile)
	if !ok {
		for _, msg := range errs {
			session.Flash(c, session.FlashLight, msg)
		}
		return
	}

	fields := make(map[string]interface{}, len(profile)+1)
	for k, v := range profile {
		fields[k] = v
	}
	fields["submitted_at"] = models.Now()

	if err := st.UpdateUser(c.Request.Context(), uid, fields); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("profile details update failed")
		session.Flash(c, session.FlashLight, "Error updating profile details. Please try again later.")
		return
	}

	session.Flash(c, session.FlashSuccess, "Profile details updated successfully!")
}
