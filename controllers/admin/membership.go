package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /update-membership
func UpdateMembership(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading memberships failed")
			session.Flash(c, session.FlashLight, "An error occurred while loading the membership data.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		members := 0
		for _, u := range users {
			if u.IsMember() {
				members++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"all_users":     users,
			"total_users":   len(users),
			"total_members": members,
			"flash":         session.TakeFlashes(c),
		})
	}
}

// POST /update-membership — assigns a plan with its validity window, or
// removes the membership outright when the action says so.
func UpdateMembershipPost(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer c.Redirect(http.StatusFound, "/update-membership")
		ctx := c.Request.Context()

		userID := c.PostForm("user_id")
		if userID == "" {
			session.Flash(c, session.FlashLight, "All fields are required.")
			return
		}

		if c.PostForm("action") == "remove" {
			if err := st.DeleteMembership(ctx, userID); err != nil {
				log.Error().Err(err).Str("uid", userID).Msg("membership removal failed")
				session.Flash(c, session.FlashLight, "An error occurred. Please try again.")
				return
			}
			session.Flash(c, session.FlashSuccess, "Membership removed successfully.")
			return
		}

		plan := c.PostForm("dropdown_option")
		startDate := c.PostForm("start_date")
		endDate := c.PostForm("end_date")
		if plan == "" || startDate == "" || endDate == "" {
			session.Flash(c, session.FlashLight, "All fields are required.")
			return
		}

		if err := st.SetMembership(ctx, userID, models.Membership{
			Plan:      plan,
			StartDate: startDate,
			EndDate:   endDate,
		}); err != nil {
			log.Error().Err(err).Str("uid", userID).Msg("membership update failed")
			session.Flash(c, session.FlashLight, "An error occurred. Please try again.")
			return
		}

		session.Flash(c, session.FlashSuccess, "Membership updated successfully.")
	}
}

// GET /membership-request — plan inquiries with the open-item count that
// drives the sidebar badge.
func MembershipRequest(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		inquiries, err := st.PlanInquiries(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading plan inquiries failed")
			session.Flash(c, session.FlashLight, "An error occurred while loading the membership requests.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		notConnected := 0
		for _, inq := range inquiries {
			if inq.Action == models.InquiryNotConnected || inq.Action == models.InquiryPending {
				notConnected++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"inquiries":           inquiries,
			"total_inquiries":     len(inquiries),
			"not_connected_count": notConnected,
			"flash":               session.TakeFlashes(c),
		})
	}
}

// POST /membership-request
func MembershipRequestPost(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer c.Redirect(http.StatusFound, "/membership-request")

		inquiryID := c.PostForm("inquiry_id")
		action := c.PostForm("dropdown_option")
		if inquiryID == "" || action == "" {
			session.Flash(c, session.FlashLight, "All fields are required.")
			return
		}

		if err := st.SetInquiryAction(c.Request.Context(), inquiryID, action); err != nil {
			log.Error().Err(err).Str("inquiry_id", inquiryID).Msg("inquiry action update failed")
			session.Flash(c, session.FlashLight, "An error occurred. Please try again.")
			return
		}

		session.Flash(c, session.FlashSuccess, "Inquiry status updated successfully.")
	}
}
