package publicControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/notify"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

// GET /contact-us
func ContactUs() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"flash": session.TakeFlashes(c)})
	}
}

// POST /contact-us
func ContactUsForm(st store.Store, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer c.Redirect(http.StatusFound, "/contact-us")

		name := strings.TrimSpace(c.PostForm("name"))
		email := strings.TrimSpace(c.PostForm("email"))
		phone := strings.TrimSpace(c.PostForm("phone"))
		message := strings.TrimSpace(c.PostForm("message"))

		if name == "" || email == "" || phone == "" || message == "" {
			session.Flash(c, session.FlashLight, "All fields are required.")
			return
		}
		if !validation.IsValidName(name) {
			session.Flash(c, session.FlashLight, "Please enter a valid name.")
			return
		}
		if !validation.IsValidEmail(email) {
			session.Flash(c, session.FlashLight, "Please enter a valid email address.")
			return
		}
		if !validation.IsValidPhone(phone) {
			session.Flash(c, session.FlashLight, "Please enter a valid phone number.")
			return
		}
		if !validation.IsValidAbout(message) {
			session.Flash(c, session.FlashLight, "Please enter valid message.")
			return
		}

		msg := models.ContactMessage{
			Name:        name,
			Email:       email,
			Phone:       phone,
			Message:     message,
			QueryStatus: models.QueryNotSolved,
			SubmittedAt: models.Now(),
		}
		id, err := st.AddContactMessage(c.Request.Context(), msg)
		if err != nil {
			log.Error().Err(err).Msg("contact message push failed")
			session.Flash(c, session.FlashLight, "Your message couldn't be sent right now. Please try again later.")
			return
		}

		hub.Broadcast(notify.KindContactMessage, id, msg)
		session.Flash(c, session.FlashSuccess, "Thank you for contacting us!")
	}
}
