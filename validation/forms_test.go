package validation

import (
	"net/url"
	"testing"
)

func validPropertyForm() url.Values {
	return url.Values{
		"title":          {"Cozy hillside bungalow"},
		"location_type":  {"Mountain"},
		"property_type":  {"Bungalow"},
		"guest_capacity": {"4"},
		"size":           {"1200.50"},
		"bedrooms":       {"3"},
		"bathrooms":      {"2"},
		"address":        {"12 Ridge Road, Ooty"},
		"city":           {"Ooty"},
		"state":          {"Tamil Nadu"},
		"pincode":        {"643001"},
		"description":    {"Quiet home with a valley view."},
		"contact_name":   {"Asha Rao"},
		"contact_email":  {"asha@example.com"},
		"contact_phone":  {"9876543210"},
		"amenities":      {"Wifi", "Refrigerator"},
		"unique_facilities": {"Balcony / Terrace"},
		"kids_friendly":     {"Baby Gear"},
		"eco_friendly_amenities": {"Vegitable Garden"},
		"house_rules":     {"Pets Welcome"},
		"remote_friendly": {"High Speed Internet"},
	}
}

func TestCollectPropertyFormRenamesFields(t *testing.T) {
	data := CollectPropertyForm(validPropertyForm())

	if data["pin_code"] != "643001" {
		t.Errorf("pin_code = %v, want 643001", data["pin_code"])
	}
	if data["name"] != "Asha Rao" {
		t.Errorf("name = %v, want Asha Rao", data["name"])
	}
	if data["email"] != "asha@example.com" {
		t.Errorf("email = %v, want asha@example.com", data["email"])
	}
	amenities, ok := data["amenities"].([]string)
	if !ok || len(amenities) != 2 {
		t.Fatalf("amenities = %v, want two entries", data["amenities"])
	}
}

func TestValidatePropertyAccepts(t *testing.T) {
	data := CollectPropertyForm(validPropertyForm())
	ok, errs := ValidateProperty(data, Exchange)
	if !ok {
		t.Fatalf("expected valid form, got errors %v", errs)
	}
}

func TestValidatePropertyRejectsUnknownAmenity(t *testing.T) {
	form := validPropertyForm()
	form["amenities"] = []string{"Wifi", "Helipad"}

	ok, errs := ValidateProperty(CollectPropertyForm(form), Exchange)
	if ok {
		t.Fatal("expected invalid form")
	}
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs["amenities"] != "One or more selected amenities are invalid." {
		t.Errorf("amenities error = %q", errs["amenities"])
	}
}

func TestValidatePropertySchemaLocationTypes(t *testing.T) {
	form := validPropertyForm()
	form["location_type"] = []string{"For Sale"}

	if ok, _ := ValidateProperty(CollectPropertyForm(form), Exchange); ok {
		t.Error("For Sale should not pass the exchange taxonomy")
	}
	if ok, errs := ValidateProperty(CollectPropertyForm(form), Sale); !ok {
		t.Errorf("For Sale should pass the sale taxonomy, got %v", errs)
	}
}

func TestMissing(t *testing.T) {
	data := map[string]interface{}{
		"title":     "x",
		"amenities": []string{"Wifi"},
		"empty":     "",
		"nolist":    []string{},
	}
	if Missing(data, "title", "amenities") {
		t.Error("filled fields reported missing")
	}
	if !Missing(data, "title", "empty") {
		t.Error("blank string not reported missing")
	}
	if !Missing(data, "nolist") {
		t.Error("empty list not reported missing")
	}
	if !Missing(data, "absent") {
		t.Error("absent field not reported missing")
	}
}

func TestValidateProfile(t *testing.T) {
	data := CollectProfileForm(url.Values{
		"name":       {"Asha Rao"},
		"occupation": {"Engineer"},
		"phone":      {"9876543210"},
		"address":    {"12 Ridge Road, Ooty"},
		"city":       {"Ooty"},
		"state":      {"Tamil Nadu"},
		"pin_code":   {"643001"},
		"about":      {"Likes the hills."},
	})
	if ok, errs := ValidateProfile(data); !ok {
		t.Fatalf("expected valid profile, got %v", errs)
	}

	data["pin_code"] = "043001"
	ok, errs := ValidateProfile(data)
	if ok {
		t.Fatal("expected invalid profile")
	}
	if _, found := errs["pin_code"]; !found {
		t.Errorf("expected pin_code error, got %v", errs)
	}
}
