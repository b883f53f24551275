package models

// House status values. Only Verified listings show up in the public
// home-exchange pages; any image change drops a listing back to NotVerified
// until an admin re-approves it.
const (
	StatusVerified    = "Verified"
	StatusNotVerified = "Not Verified"
)

// Property is the single listing attached to a user, stored at
// users/<uid>/properties.
type Property struct {
	Title         string `json:"title"`
	LocationType  string `json:"location_type"`
	PropertyType  string `json:"property_type"`
	GuestCapacity string `json:"guest_capacity"`
	Size          string `json:"size"`
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`

	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PinCode     string `json:"pin_code"`
	Description string `json:"description"`

	Amenities            []string `json:"amenities,omitempty"`
	UniqueFacilities     []string `json:"unique_facilities,omitempty"`
	KidsFriendly         []string `json:"kids_friendly,omitempty"`
	EcoFriendlyAmenities []string `json:"eco_friendly_amenities,omitempty"`
	HouseRules           []string `json:"house_rules,omitempty"`
	RemoteFriendly       []string `json:"remote_friendly,omitempty"`

	// Contact details shown on the listing, independent of the account.
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Images      []string `json:"images,omitempty"`
	HouseStatus string   `json:"house_status"`
	GuestPoints int      `json:"guest_points"`
	SubmittedAt string   `json:"submitted_at"`
}
