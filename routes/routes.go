package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanKr7/CosmoXclub/authn"
	"github.com/SumanKr7/CosmoXclub/config"
	"github.com/SumanKr7/CosmoXclub/identity"
	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/notify"
	"github.com/SumanKr7/CosmoXclub/store"
)

// Deps bundles everything the handlers are wired with.
type Deps struct {
	Cfg      *config.Config
	Store    store.Store
	Identity identity.API
	Verify   authn.Verifier
	Images   images.Service
	Hub      *notify.Hub
}

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public pages (no middleware)
	SetupPublicRoutes(r, d)

	// Signup / login / password flows
	SetupAuthRoutes(r, d)

	// Account and listing routes (session-protected)
	SetupUserRoutes(r, d)

	// Admin routes (admin-session-protected)
	SetupAdminRoutes(r, d)
}
