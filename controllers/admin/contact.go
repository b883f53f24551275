package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /contact-form — submitted contact messages with the open-query count.
func ContactForm(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := st.ContactMessages(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading contact messages failed")
			session.Flash(c, session.FlashLight, "An error occurred while loading the contact form data.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		notSolved := 0
		for _, msg := range messages {
			if msg.QueryStatus == models.QueryNotSolved || msg.QueryStatus == models.QueryPending {
				notSolved++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"messages":         messages,
			"total_messages":   len(messages),
			"not_solved_count": notSolved,
			"flash":            session.TakeFlashes(c),
		})
	}
}

// POST /contact-form
func ContactFormPost(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer c.Redirect(http.StatusFound, "/contact-form")

		messageID := c.PostForm("message_id")
		status := c.PostForm("dropdown_option")
		if messageID == "" || status == "" {
			session.Flash(c, session.FlashLight, "All fields are required.")
			return
		}

		if err := st.SetQueryStatus(c.Request.Context(), messageID, status); err != nil {
			log.Error().Err(err).Str("message_id", messageID).Msg("query status update failed")
			session.Flash(c, session.FlashLight, "An error occurred. Please try again.")
			return
		}

		session.Flash(c, session.FlashSuccess, "Query status updated successfully.")
	}
}
