package store

import (
	"context"
	"testing"

	"github.com/SumanKr7/CosmoXclub/models"
)

func seedUsers(t *testing.T) *Memory {
	t.Helper()
	s := NewMemory()
	ctx := context.Background()

	users := map[string]models.User{
		"u1": {Name: "Asha", Email: "asha@example.com", Properties: &models.Property{HouseStatus: models.StatusVerified}},
		"u2": {Name: "Ravi", Email: "ravi@example.com", Properties: &models.Property{HouseStatus: models.StatusNotVerified}},
		"u3": {Name: "Meena", Email: "meena@example.com"},
	}
	for uid, u := range users {
		if err := s.SetUser(ctx, uid, u); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestIsEmailRegistered(t *testing.T) {
	s := seedUsers(t)
	ctx := context.Background()

	ok, err := IsEmailRegistered(ctx, s, "ravi@example.com")
	if err != nil || !ok {
		t.Errorf("registered email: ok=%v err=%v", ok, err)
	}
	ok, err = IsEmailRegistered(ctx, s, "nobody@example.com")
	if err != nil || ok {
		t.Errorf("unknown email: ok=%v err=%v", ok, err)
	}
}

func TestVerifiedListings(t *testing.T) {
	s := seedUsers(t)
	users, err := s.AllUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	listings := VerifiedListings(users, "")
	if len(listings) != 1 {
		t.Fatalf("listings = %v, want only u1", listings)
	}
	if _, ok := listings["u1"]; !ok {
		t.Error("u1 missing from verified listings")
	}

	// The viewer's own verified listing is excluded.
	if len(VerifiedListings(users, "u1")) != 0 {
		t.Error("own listing should be excluded")
	}
}

func TestAdminListings(t *testing.T) {
	s := seedUsers(t)
	users, err := s.AllUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	listings := AdminListings(users)
	if len(listings) != 2 {
		t.Fatalf("admin listings = %v, want u1 and u2", listings)
	}
	if _, ok := listings["u3"]; ok {
		t.Error("user without a listing should not appear")
	}
}

func TestUpdatePropertyCreatesDocument(t *testing.T) {
	s := seedUsers(t)
	ctx := context.Background()

	err := s.UpdateProperty(ctx, "u3", map[string]interface{}{
		"title":        "Hillside cottage",
		"house_status": models.StatusNotVerified,
		"guest_points": 0,
		"amenities":    []string{"Wifi"},
	})
	if err != nil {
		t.Fatal(err)
	}

	u, err := s.User(ctx, "u3")
	if err != nil {
		t.Fatal(err)
	}
	if u.Properties == nil {
		t.Fatal("properties not created")
	}
	if u.Properties.Title != "Hillside cottage" {
		t.Errorf("title = %q", u.Properties.Title)
	}
	if u.Properties.HouseStatus != models.StatusNotVerified {
		t.Errorf("house_status = %q", u.Properties.HouseStatus)
	}
	if len(u.Properties.Amenities) != 1 {
		t.Errorf("amenities = %v", u.Properties.Amenities)
	}
}

func TestDeleteProperty(t *testing.T) {
	s := seedUsers(t)
	ctx := context.Background()

	if err := s.DeleteProperty(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	u, err := s.User(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Properties != nil {
		t.Error("property still present after delete")
	}
	if u.Name != "Asha" {
		t.Error("profile should survive property deletion")
	}
}

func TestInquiryLifecycle(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, err := s.AddPlanInquiry(ctx, models.PlanInquiry{
		Fullname: "Asha Rao",
		Plan:     "gold",
		Action:   models.InquiryNotConnected,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetInquiryAction(ctx, id, models.InquiryConnected); err != nil {
		t.Fatal(err)
	}
	inquiries, err := s.PlanInquiries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if inquiries[id].Action != models.InquiryConnected {
		t.Errorf("action = %q", inquiries[id].Action)
	}

	if err := s.SetInquiryAction(ctx, "missing", models.InquiryConnected); err != ErrNotFound {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestMembership(t *testing.T) {
	s := seedUsers(t)
	ctx := context.Background()

	err := s.SetMembership(ctx, "u2", models.Membership{Plan: "Gold", StartDate: "01-01-2026", EndDate: "31-12-2026"})
	if err != nil {
		t.Fatal(err)
	}
	u, _ := s.User(ctx, "u2")
	if !u.IsMember() {
		t.Error("gold plan should count as a member")
	}

	if err := s.DeleteMembership(ctx, "u2"); err != nil {
		t.Fatal(err)
	}
	u, _ = s.User(ctx, "u2")
	if u.IsMember() {
		t.Error("membership should be gone")
	}
}
