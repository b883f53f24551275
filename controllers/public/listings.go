package publicControllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
	"github.com/SumanKr7/CosmoXclub/validation"
)

const listingsPerPage = 8

// Listing pairs a uid with its user document for ordered pagination.
type Listing struct {
	UID  string      `json:"uid"`
	User models.User `json:"user"`
}

// GET /home-exchange — verified listings only, 8 per page.
func HomeExchange(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading listings failed")
			users = map[string]models.User{}
		}

		currentUID, _ := session.CurrentUser(c)
		house := store.VerifiedListings(users, currentUID)

		listings := make([]Listing, 0, len(house))
		for uid, u := range house {
			listings = append(listings, Listing{UID: uid, User: u})
		}
		sort.Slice(listings, func(i, j int) bool { return listings[i].UID < listings[j].UID })

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		total := len(listings)
		totalPages := (total + listingsPerPage - 1) / listingsPerPage

		start := (page - 1) * listingsPerPage
		if start > total {
			start = total
		}
		end := start + listingsPerPage
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"house":       listings[start:end],
			"page":        page,
			"total_pages": totalPages,
			"flash":       session.TakeFlashes(c),
		})
	}
}

// GET /home-details/:uid — one verified listing.
func HomeDetails(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading listing details failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "We're unable to process your request at the moment. Please try again later."})
			return
		}

		currentUID, _ := session.CurrentUser(c)
		house := store.VerifiedListings(users, currentUID)

		details, ok := house[c.Param("uid")]
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
