package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

type homeCounts struct {
	verified    int
	notVerified int
	members     int
}

func countHomes(house map[string]models.User) homeCounts {
	var counts homeCounts
	for _, u := range house {
		switch u.Properties.HouseStatus {
		case models.StatusVerified:
			counts.verified++
		case models.StatusNotVerified:
			counts.notVerified++
		}
		if u.IsMember() {
			counts.members++
		}
	}
	return counts
}

// GET /dashboard
func Dashboard(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading dashboard failed")
			session.Flash(c, session.FlashLight, "An error occurred while loading the dashboard. Please try again later.")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "flash": session.TakeFlashes(c)})
			return
		}

		house := store.AdminListings(users)
		counts := countHomes(house)

		c.JSON(http.StatusOK, gin.H{
			"total_users":              len(users),
			"all_users":                users,
			"total_homes":              counts.verified + counts.notVerified,
			"verified_homes_count":     counts.verified,
			"not_verified_homes_count": counts.notVerified,
			"total_members":            counts.members,
			"flash":                    session.TakeFlashes(c),
		})
	}
}
