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

// GET /
func Home(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{
			"user":  gin.H{},
			"flash": session.TakeFlashes(c),
			"show":  c.Query("show"),
		}
		if uid, ok := session.CurrentUser(c); ok {
			if u, err := st.User(c.Request.Context(), uid); err == nil {
				payload["user"] = u
			}
		}
		c.JSON(http.StatusOK, payload)
	}
}

// POST / — dispatches on form_type: newsletter signup or plan inquiry.
func HomeForm(st store.Store, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.PostForm("form_type") {
		case "newsletter":
			newsletter(c, st, hub)
		case "plan_inquiry":
			planInquiry(c, st, hub)
		}
		c.Redirect(http.StatusFound, "/")
	}
}

func newsletter(c *gin.Context, st store.Store, hub *notify.Hub) {
	email := strings.TrimSpace(c.PostForm("email"))

	if email == "" {
		session.Flash(c, session.FlashLight, "Email is required.")
		return
	}
	if !validation.IsValidEmail(email) {
		session.Flash(c, session.FlashLight, "Please enter a valid email address.")
		return
	}

	sub := models.Subscription{Email: email, SubmittedAt: models.Now()}
	id, err := st.AddSubscription(c.Request.Context(), sub)
	if err != nil {
		log.Error().Err(err).Msg("newsletter subscription push failed")
		session.Flash(c, session.FlashLight, "Subscription failed. Please try again later.")
		return
	}

	hub.Broadcast(notify.KindSubscription, id, sub)
	session.Flash(c, session.FlashSuccess, "Thank you for subscribing!")
}

func planInquiry(c *gin.Context, st store.Store, hub *notify.Hub) {
	fullname := strings.TrimSpace(c.PostForm("fullname"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	email := strings.TrimSpace(c.PostForm("email"))
	planType := strings.TrimSpace(c.PostForm("plan-type"))

	if fullname == "" || phone == "" || email == "" || planType == "" {
		session.Flash(c, session.FlashLight, "All fields are required for plan inquiry.")
		return
	}
	if !validation.IsValidName(fullname) {
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

	inquiry := models.PlanInquiry{
		Fullname:    fullname,
		Phone:       phone,
		Email:       email,
		Plan:        planType,
		Action:      models.InquiryNotConnected,
		SubmittedAt: models.Now(),
	}
	id, err := st.AddPlanInquiry(c.Request.Context(), inquiry)
	if err != nil {
		log.Error().Err(err).Msg("plan inquiry push failed")
		session.Flash(c, session.FlashLight, "Could not submit inquiry. Try again later.")
		return
	}

	hub.Broadcast(notify.KindPlanInquiry, id, inquiry)
	session.Flash(c, session.FlashSuccess, "Your inquiry has been submitted!")
}
