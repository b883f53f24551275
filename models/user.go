package models

import (
	"strings"
	"time"
)

// User mirrors the users/<uid> document in the Realtime Database. The uid
// itself is the Firebase auth UID and is the document key, not a field.
type User struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`

	Occupation   string `json:"occupation,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PinCode      string `json:"pin_code,omitempty"`
	About        string `json:"about,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`

	SubmittedAt string `json:"submitted_at"`

	Properties        *Property   `json:"properties,omitempty"`
	MembershipDetails *Membership `json:"membership_details,omitempty"`
}

// Membership is the membership_details sub-document.
type Membership struct {
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// memberPlans are the plans that count a user as a paying member.
var memberPlans = map[string]bool{
	"silver":   true,
	"gold":     true,
	"platinum": true,
}

// IsMember reports whether the user holds one of the paid plans.
func (u User) IsMember() bool {
	if u.MembershipDetails == nil {
		return false
	}
	return memberPlans[strings.ToLower(strings.TrimSpace(u.MembershipDetails.Plan))]
}

// IST is the timezone every submitted_at timestamp is recorded in.
var IST = time.FixedZone("IST", 5*3600+30*60)

const timestampLayout = "02-01-2006, 15:04"

// Timestamp formats t the way the documents store submission times.
func Timestamp(t time.Time) string {
	return t.In(IST).Format(timestampLayout)
}

// Now returns the current timestamp string.
func Now() string {
	return Timestamp(time.Now())
}
