package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SumanKr7/CosmoXclub/models"
)

// Memory is an in-process Store used by tests and local runs without
// Firebase credentials.
type Memory struct {
	mu sync.RWMutex

	users         map[string]models.User
	inquiries     map[string]models.PlanInquiry
	contacts      map[string]models.ContactMessage
	subscriptions map[string]models.Subscription

	// Down simulates a dead backend for liveness-probe paths.
	Down bool
}

func NewMemory() *Memory {
	return &Memory{
		users:         map[string]models.User{},
		inquiries:     map[string]models.PlanInquiry{},
		contacts:      map[string]models.ContactMessage{},
		subscriptions: map[string]models.Subscription{},
	}
}

func (s *Memory) Alive(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.Down
}

func (s *Memory) User(ctx context.Context, uid string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *Memory) SetUser(ctx context.Context, uid string, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[uid] = u
	return nil
}

func (s *Memory) UpdateUser(ctx context.Context, uid string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	for k, v := range fields {
		str, _ := v.(string)
		switch k {
		case "name":
			u.Name = str
		case "phone":
			u.Phone = str
		case "email":
			u.Email = str
		case "email_verified":
			u.EmailVerified = str
		case "occupation":
			u.Occupation = str
		case "address":
			u.Address = str
		case "city":
			u.City = str
		case "state":
			u.State = str
		case "pin_code":
			u.PinCode = str
		case "about":
			u.About = str
		case "profile_image":
			u.ProfileImage = str
		case "submitted_at":
			u.SubmittedAt = str
		}
	}
	s.users[uid] = u
	return nil
}

func (s *Memory) AllUsers(ctx context.Context) (map[string]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.User, len(s.users))
	for uid, u := range s.users {
		out[uid] = u
	}
	return out, nil
}

func (s *Memory) EmailVerified(ctx context.Context, uid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	if !ok {
		return "", nil
	}
	return u.EmailVerified, nil
}

func (s *Memory) UpdateProperty(ctx context.Context, uid string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	if u.Properties == nil {
		u.Properties = &models.Property{}
	}
	p := u.Properties
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "location_type":
			p.LocationType = v.(string)
		case "property_type":
			p.PropertyType = v.(string)
		case "guest_capacity":
			p.GuestCapacity = v.(string)
		case "size":
			p.Size = v.(string)
		case "bedrooms":
			p.Bedrooms = v.(string)
		case "bathrooms":
			p.Bathrooms = v.(string)
		case "address":
			p.Address = v.(string)
		case "city":
			p.City = v.(string)
		case "state":
			p.State = v.(string)
		case "pin_code":
			p.PinCode = v.(string)
		case "description":
			p.Description = v.(string)
		case "amenities":
			p.Amenities = toStrings(v)
		case "unique_facilities":
			p.UniqueFacilities = toStrings(v)
		case "kids_friendly":
			p.KidsFriendly = toStrings(v)
		case "eco_friendly_amenities":
			p.EcoFriendlyAmenities = toStrings(v)
		case "house_rules":
			p.HouseRules = toStrings(v)
		case "remote_friendly":
			p.RemoteFriendly = toStrings(v)
		case "name":
			p.Name = v.(string)
		case "email":
			p.Email = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "house_status":
			p.HouseStatus = v.(string)
		case "guest_points":
			if n, ok := v.(int); ok {
				p.GuestPoints = n
			}
		case "submitted_at":
			p.SubmittedAt = v.(string)
		}
	}
	s.users[uid] = u
	return nil
}

func toStrings(v interface{}) []string {
	if ss, ok := v.([]string); ok {
		return ss
	}
	return nil
}

func (s *Memory) DeleteProperty(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return nil
	}
	u.Properties = nil
	s.users[uid] = u
	return nil
}

func (s *Memory) PropertyImages(ctx context.Context, uid string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	if !ok || u.Properties == nil {
		return nil, nil
	}
	return append([]string(nil), u.Properties.Images...), nil
}

func (s *Memory) SetPropertyImages(ctx context.Context, uid string, images []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	if u.Properties == nil {
		u.Properties = &models.Property{}
	}
	u.Properties.Images = images
	s.users[uid] = u
	return nil
}

func (s *Memory) SetHouseStatus(ctx context.Context, uid, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	if u.Properties == nil {
		u.Properties = &models.Property{}
	}
	u.Properties.HouseStatus = status
	s.users[uid] = u
	return nil
}

func (s *Memory) SetMembership(ctx context.Context, uid string, m models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	u.MembershipDetails = &m
	s.users[uid] = u
	return nil
}

func (s *Memory) DeleteMembership(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[uid]
	u.MembershipDetails = nil
	s.users[uid] = u
	return nil
}

func (s *Memory) AddSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.subscriptions[id] = sub
	return id, nil
}

func (s *Memory) AddPlanInquiry(ctx context.Context, q models.PlanInquiry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.inquiries[id] = q
	return id, nil
}

func (s *Memory) PlanInquiries(ctx context.Context) (map[string]models.PlanInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.PlanInquiry, len(s.inquiries))
	for id, q := range s.inquiries {
		out[id] = q
	}
	return out, nil
}

func (s *Memory) SetInquiryAction(ctx context.Context, id, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.inquiries[id]
	if !ok {
		return ErrNotFound
	}
	q.Action = action
	s.inquiries[id] = q
	return nil
}

func (s *Memory) AddContactMessage(ctx context.Context, m models.ContactMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.contacts[id] = m
	return id, nil
}

func (s *Memory) ContactMessages(ctx context.Context) (map[string]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.ContactMessage, len(s.contacts))
	for id, m := range s.contacts {
		out[id] = m
	}
	return out, nil
}

func (s *Memory) SetQueryStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.contacts[id]
	if !ok {
		return ErrNotFound
	}
	m.QueryStatus = status
	s.contacts[id] = m
	return nil
}
