package validation

import (
	"net/url"
	"strings"
)

// CollectProfileForm pulls the profile fields out of a posted form, trimmed.
func CollectProfileForm(form url.Values) map[string]string {
	fields := []string{
		"name", "occupation", "phone",
		"address", "city", "state",
		"pin_code", "about",
	}
	data := make(map[string]string, len(fields))
	for _, f := range fields {
		data[f] = strings.TrimSpace(form.Get(f))
	}
	return data
}

// ValidateProfile applies the profile rule table. Every failing field gets
// its message; fields are independent of each other.
func ValidateProfile(data map[string]string) (bool, map[string]string) {
	rules := []struct {
		field   string
		valid   func(string) bool
		message string
	}{
		{"name", IsValidName, "Name must contain only letters and spaces (2-100 chars)."},
		{"occupation", IsValidOccupation, "Occupation can include letters, spaces, &, /, or -."},
		{"phone", IsValidPhone, "Phone must be 10-15 digits, optional leading '+'."},
		{"address", IsValidAddress, "Address must be 5-120 chars; letters, numbers & punctuation."},
		{"city", IsValidCity, "City may contain only letters and spaces (2-50 chars)."},
		{"state", IsValidState, "State may contain only letters and spaces (2-50 chars)."},
		{"pin_code", IsValidPinCode, "PIN must be a 6-digit Indian postal code (cannot start with 0)."},
		{"about", IsValidAbout, "About section must be 1-1000 characters."},
	}

	errors := map[string]string{}
	for _, r := range rules {
		if !r.valid(strings.TrimSpace(data[r.field])) {
			errors[r.field] = r.message
		}
	}
	return len(errors) == 0, errors
}

// ListFields are the multi-valued property form fields.
var ListFields = []string{
	"amenities", "unique_facilities", "kids_friendly",
	"eco_friendly_amenities", "house_rules", "remote_friendly",
}

// CollectPropertyForm normalizes a posted property form into the document
// field names (pincode -> pin_code, contact_* -> bare names).
func CollectPropertyForm(form url.Values) map[string]interface{} {
	fieldMap := map[string]string{
		"title":          "title",
		"location_type":  "location_type",
		"property_type":  "property_type",
		"guest_capacity": "guest_capacity",
		"size":           "size",
		"bedrooms":       "bedrooms",
		"bathrooms":      "bathrooms",
		"address":        "address",
		"city":           "city",
		"state":          "state",
		"pincode":        "pin_code",
		"description":    "description",
		"contact_name":   "name",
		"contact_email":  "email",
		"contact_phone":  "phone",
	}

	data := make(map[string]interface{}, len(fieldMap)+len(ListFields))
	for src, dst := range fieldMap {
		data[dst] = strings.TrimSpace(form.Get(src))
	}
	for _, f := range ListFields {
		data[f] = append([]string(nil), form[f]...)
	}
	return data
}

// Missing reports whether any named field is blank or an empty list.
func Missing(data map[string]interface{}, fields ...string) bool {
	for _, f := range fields {
		switch v := data[f].(type) {
		case string:
			if v == "" {
				return true
			}
		case []string:
			if len(v) == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// ValidateProperty applies the property rule table against a schema's
// allowed-value sets. Evaluation order does not affect the result.
func ValidateProperty(data map[string]interface{}, schema Schema) (bool, map[string]string) {
	str := func(field string) string {
		s, _ := data[field].(string)
		return strings.TrimSpace(s)
	}
	list := func(field string) []string {
		l, _ := data[field].([]string)
		return l
	}

	strRules := []struct {
		field   string
		valid   func(string) bool
		message string
	}{
		{"title", IsValidTitle, "Title must be 5-100 characters, valid punctuation allowed."},
		{"location_type", func(s string) bool { return schema.LocationTypes[s] }, schema.LocationTypeMessage},
		{"property_type", func(s string) bool { return schema.PropertyTypes[s] }, "Choose a valid property type."},
		{"guest_capacity", IsValidGuestCapacity, "Enter a valid guest capacity."},
		{"size", IsValidSize, "size must be a positive number (e.g., 1200.50)."},
		{"bedrooms", IsValidBedrooms, "Bedrooms must be between 1 and 5."},
		{"bathrooms", IsValidBathrooms, "Bathrooms must be between 1 and 5."},
		{"address", IsValidAddress, "Address must be 5-120 characters, letters, numbers, punctuation allowed."},
		{"city", IsValidCity, "City can contain only letters & spaces (2-50 chars)."},
		{"state", IsValidState, "State can contain only letters & spaces (2-50 chars)."},
		{"pin_code", IsValidPinCode, "PIN code must be a valid 6-digit Indian postal code."},
		{"description", IsValidDescription, "Description must be 1-1000 characters."},
		{"name", IsValidName, "Name must contain only letters and spaces (min 2 chars)."},
		{"email", IsValidEmail, "Please enter a valid email address."},
		{"phone", IsValidPhone, "Phone number must be 10-15 digits with optional '+' sign."},
	}

	listRules := []struct {
		field   string
		allowed map[string]bool
		message string
	}{
		{"amenities", schema.Amenities, "One or more selected amenities are invalid."},
		{"unique_facilities", schema.UniqueFacilities, "One or more selected unique facilities are invalid."},
		{"kids_friendly", schema.KidsFriendly, "One or more selected kids friendly options are invalid."},
		{"eco_friendly_amenities", schema.EcoFriendlyAmenities, "One or more selected eco friendly amenities are invalid."},
		{"house_rules", schema.HouseRules, "One or more selected house rules are invalid."},
		{"remote_friendly", schema.RemoteFriendly, "One or more selected remote friendly options are invalid."},
	}

	errors := map[string]string{}
	for _, r := range strRules {
		if !r.valid(str(r.field)) {
			errors[r.field] = r.message
		}
	}
	for _, r := range listRules {
		if !allIn(list(r.field), r.allowed) {
			errors[r.field] = r.message
		}
	}
	return len(errors) == 0, errors
}
