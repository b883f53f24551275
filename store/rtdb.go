package store

import (
	"context"
	"fmt"

	"firebase.google.com/go/db"

	"github.com/SumanKr7/CosmoXclub/models"
)

// RTDB is the Firebase Realtime Database backing store.
type RTDB struct {
	db *db.Client
}

func NewRTDB(client *db.Client) *RTDB {
	return &RTDB{db: client}
}

func (s *RTDB) Alive(ctx context.Context) bool {
	var v interface{}
	return s.db.NewRef("healthcheck").GetShallow(ctx, &v) == nil
}

func (s *RTDB) userRef(uid string) *db.Ref {
	return s.db.NewRef("users").Child(uid)
}

func (s *RTDB) User(ctx context.Context, uid string) (*models.User, error) {
	var u *models.User
	if err := s.userRef(uid).Get(ctx, &u); err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *RTDB) SetUser(ctx context.Context, uid string, u models.User) error {
	return s.userRef(uid).Set(ctx, u)
}

func (s *RTDB) UpdateUser(ctx context.Context, uid string, fields map[string]interface{}) error {
	return s.userRef(uid).Update(ctx, fields)
}

func (s *RTDB) AllUsers(ctx context.Context) (map[string]models.User, error) {
	var users map[string]models.User
	if err := s.db.NewRef("users").Get(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = map[string]models.User{}
	}
	return users, nil
}

func (s *RTDB) EmailVerified(ctx context.Context, uid string) (string, error) {
	var status string
	if err := s.userRef(uid).Child("email_verified").Get(ctx, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (s *RTDB) UpdateProperty(ctx context.Context, uid string, fields map[string]interface{}) error {
	return s.userRef(uid).Child("properties").Update(ctx, fields)
}

func (s *RTDB) DeleteProperty(ctx context.Context, uid string) error {
	return s.userRef(uid).Child("properties").Delete(ctx)
}

func (s *RTDB) PropertyImages(ctx context.Context, uid string) ([]string, error) {
	ref := s.userRef(uid).Child("properties").Child("images")

	var images []string
	if err := ref.Get(ctx, &images); err == nil {
		return images, nil
	}

	// Realtime Database may hand back a sparse list as an object.
	var asMap map[string]string
	if err := ref.Get(ctx, &asMap); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(asMap))
	for _, v := range asMap {
		out = append(out, v)
	}
	return out, nil
}

func (s *RTDB) SetPropertyImages(ctx context.Context, uid string, images []string) error {
	return s.userRef(uid).Child("properties").Child("images").Set(ctx, images)
}

func (s *RTDB) SetHouseStatus(ctx context.Context, uid, status string) error {
	return s.userRef(uid).Child("properties").Child("house_status").Set(ctx, status)
}

func (s *RTDB) SetMembership(ctx context.Context, uid string, m models.Membership) error {
	return s.userRef(uid).Child("membership_details").Set(ctx, m)
}

func (s *RTDB) DeleteMembership(ctx context.Context, uid string) error {
	return s.userRef(uid).Child("membership_details").Delete(ctx)
}

func (s *RTDB) AddSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	return s.push(ctx, "subscriptions", sub)
}

func (s *RTDB) AddPlanInquiry(ctx context.Context, q models.PlanInquiry) (string, error) {
	return s.push(ctx, "plan_inquiries", q)
}

func (s *RTDB) PlanInquiries(ctx context.Context) (map[string]models.PlanInquiry, error) {
	var out map[string]models.PlanInquiry
	if err := s.db.NewRef("plan_inquiries").Get(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]models.PlanInquiry{}
	}
	return out, nil
}

func (s *RTDB) SetInquiryAction(ctx context.Context, id, action string) error {
	return s.db.NewRef("plan_inquiries").Child(id).Update(ctx, map[string]interface{}{
		"action": action,
	})
}

func (s *RTDB) AddContactMessage(ctx context.Context, m models.ContactMessage) (string, error) {
	return s.push(ctx, "contact_form", m)
}

func (s *RTDB) ContactMessages(ctx context.Context) (map[string]models.ContactMessage, error) {
	var out map[string]models.ContactMessage
	if err := s.db.NewRef("contact_form").Get(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]models.ContactMessage{}
	}
	return out, nil
}

func (s *RTDB) SetQueryStatus(ctx context.Context, id, status string) error {
	return s.db.NewRef("contact_form").Child(id).Update(ctx, map[string]interface{}{
		"query_status": status,
	})
}

func (s *RTDB) push(ctx context.Context, path string, v interface{}) (string, error) {
	ref, err := s.db.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", fmt.Errorf("push %s: %w", path, err)
	}
	return ref.Key, nil
}
