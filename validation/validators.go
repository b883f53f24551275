// Package validation holds the field validators and form rule tables for
// profiles and property listings. Validators are pure predicates: a
// non-matching input simply returns false.
package validation

import (
	"regexp"
	"strings"
)

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe      = regexp.MustCompile(`^\+?\d{10,15}$`)
	occupationRe = regexp.MustCompile(`^[A-Za-z\s.&/-]{2,100}$`)
	addressRe    = regexp.MustCompile(`^[\w\s,./#\-]{5,120}$`)
	cityStateRe  = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)
	pinCodeRe    = regexp.MustCompile(`^[1-9]\d{5}$`)
	titleRe      = regexp.MustCompile(`^[\w\s.,'"()\-]{5,100}$`)
	sizeRe       = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// IsValidName allows letters and spaces only.
func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}

// IsValidEmail is a simple local@domain.tld check.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone allows 10-15 digits with an optional leading '+'.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

const passwordSpecials = "@$!%*?&"

// IsValidPassword requires at least 8 characters with at least one upper,
// one lower, one digit, and one special from @$!%*?&; nothing else allowed.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

// IsValidOccupation allows letters, spaces and basic punctuation ("Sr. Dev").
func IsValidOccupation(occupation string) bool {
	return occupationRe.MatchString(occupation)
}

// IsValidAddress allows letters, digits and basic punctuation, 5-120 chars.
func IsValidAddress(address string) bool {
	return addressRe.MatchString(address)
}

// IsValidCity allows letters and spaces, 2-50 chars.
func IsValidCity(city string) bool {
	return cityStateRe.MatchString(city)
}

// IsValidState allows letters and spaces, 2-50 chars.
func IsValidState(state string) bool {
	return cityStateRe.MatchString(state)
}

// IsValidPinCode accepts an Indian 6-digit PIN; it cannot start with 0.
func IsValidPinCode(pinCode string) bool {
	return pinCodeRe.MatchString(pinCode)
}

// IsValidAbout accepts 1-1000 visible characters.
func IsValidAbout(about string) bool {
	n := len(strings.TrimSpace(about))
	return n > 0 && n <= 1000
}

// IsValidTitle accepts 5-100 chars of letters, digits, spaces, punctuation.
func IsValidTitle(title string) bool {
	return titleRe.MatchString(title)
}

// IsValidSize accepts a decimal number with at most two fraction digits.
func IsValidSize(size string) bool {
	return sizeRe.MatchString(size)
}

var oneToFive = map[string]bool{"1": true, "2": true, "3": true, "4": true, "5": true}

// IsValidGuestCapacity accepts 1 through 5 guests.
func IsValidGuestCapacity(guestCapacity string) bool {
	return oneToFive[guestCapacity]
}

// IsValidBedrooms accepts 1 through 5.
func IsValidBedrooms(bedrooms string) bool {
	return oneToFive[bedrooms]
}

// IsValidBathrooms accepts 1 through 5.
func IsValidBathrooms(bathrooms string) bool {
	return oneToFive[bathrooms]
}

// IsValidDescription accepts 1-1000 chars after trimming.
func IsValidDescription(description string) bool {
	n := len(strings.TrimSpace(description))
	return n >= 1 && n <= 1000
}

// allIn reports whether every item is in the allowed set.
func allIn(items []string, allowed map[string]bool) bool {
	for _, item := range items {
		if !allowed[item] {
			return false
		}
	}
	return true
}
