package store

import (
	"context"
	"errors"
	"strings"

	"github.com/SumanKr7/CosmoXclub/models"
)

// ErrNotFound is returned when a document (or sub-document) does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is every document operation the handlers perform against the
// Realtime Database. Writes are last-write-wins; there are no transactions.
type Store interface {
	// Alive is the lightweight liveness probe run before mutating requests.
	Alive(ctx context.Context) bool

	User(ctx context.Context, uid string) (*models.User, error)
	SetUser(ctx context.Context, uid string, u models.User) error
	UpdateUser(ctx context.Context, uid string, fields map[string]interface{}) error
	AllUsers(ctx context.Context) (map[string]models.User, error)
	EmailVerified(ctx context.Context, uid string) (string, error)

	UpdateProperty(ctx context.Context, uid string, fields map[string]interface{}) error
	DeleteProperty(ctx context.Context, uid string) error
	PropertyImages(ctx context.Context, uid string) ([]string, error)
	SetPropertyImages(ctx context.Context, uid string, images []string) error
	SetHouseStatus(ctx context.Context, uid, status string) error

	SetMembership(ctx context.Context, uid string, m models.Membership) error
	DeleteMembership(ctx context.Context, uid string) error

	AddSubscription(ctx context.Context, s models.Subscription) (string, error)

	AddPlanInquiry(ctx context.Context, q models.PlanInquiry) (string, error)
	PlanInquiries(ctx context.Context) (map[string]models.PlanInquiry, error)
	SetInquiryAction(ctx context.Context, id, action string) error

	AddContactMessage(ctx context.Context, m models.ContactMessage) (string, error)
	ContactMessages(ctx context.Context) (map[string]models.ContactMessage, error)
	SetQueryStatus(ctx context.Context, id, status string) error
}

// IsEmailRegistered reports whether any user document carries the email.
func IsEmailRegistered(ctx context.Context, s Store, email string) (bool, error) {
	users, err := s.AllUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// VerifiedListings filters users down to publicly browsable listings:
// a Verified house status, excluding the viewer's own entry.
func VerifiedListings(users map[string]models.User, excludeUID string) map[string]models.User {
	out := make(map[string]models.User)
	for uid, u := range users {
		if uid == excludeUID {
			continue
		}
		if u.Properties != nil && u.Properties.HouseStatus == models.StatusVerified {
			out[uid] = u
		}
	}
	return out
}

// AdminListings returns every user with a listing in any moderation state.
func AdminListings(users map[string]models.User) map[string]models.User {
	out := make(map[string]models.User)
	for uid, u := range users {
		if u.Properties != nil && strings.TrimSpace(u.Properties.HouseStatus) != "" {
			out[uid] = u
		}
	}
	return out
}
