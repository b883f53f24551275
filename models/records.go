package models

// Inquiry action states worked by admins on the membership-request page.
const (
	InquiryNotConnected = "Not Connected"
	InquiryPending      = "Pending"
	InquiryConnected    = "Connected"
)

// Contact message query states worked on the contact-form page.
const (
	QueryNotSolved = "Not Solved"
	QueryPending   = "Pending"
	QuerySolved    = "Solved"
)

// PlanInquiry is an append-only record under plan_inquiries/.
type PlanInquiry struct {
	Fullname    string `json:"fullname"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Plan        string `json:"plan"`
	Action      string `json:"action"`
	SubmittedAt string `json:"submitted_at"`
}

// ContactMessage is an append-only record under contact_form/.
type ContactMessage struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	QueryStatus string `json:"query_status"`
	SubmittedAt string `json:"submitted_at"`
}

// Subscription is a newsletter signup under subscriptions/.
type Subscription struct {
	Email       string `json:"email"`
	SubmittedAt string `json:"submitted_at"`
}
