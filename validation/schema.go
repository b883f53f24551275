package validation

// Schema carries the allowed-value sets that differ between listing
// taxonomies. The exchange and sale variants are two values of the same
// type; the rule tables never branch on which one they got.
type Schema struct {
	LocationTypes        map[string]bool
	PropertyTypes        map[string]bool
	Amenities            map[string]bool
	UniqueFacilities     map[string]bool
	KidsFriendly         map[string]bool
	EcoFriendlyAmenities map[string]bool
	HouseRules           map[string]bool
	RemoteFriendly       map[string]bool

	LocationTypeMessage string
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

var propertyTypes = set("Bungalow", "Townhome", "Villas", "Farmhouse", "Apartment")

var amenityLists = struct {
	amenities, facilities, kids, eco, rules, remote map[string]bool
}{
	amenities: set(
		"Air Condition", "Refrigerator", "Microwave Oven", "Heating System", "Washing Machine",
		"Wifi", "Smart TV", "Dishwasher", "Induction", "Kettle", "Bathtub",
	),
	facilities: set(
		"Private Backyard", "Balcony / Terrace", "BBQ", "Pool", "Bicycle",
		"Cleaning Person", "Private Parking", "Fire Place", "Private Gym", "Elevator", "Guide",
	),
	kids: set("Kids Playground", "Baby Gear", "Secured Pool", "Kids Toy"),
	eco: set(
		"Selective Waste Sorting", "Public Transport Access", "Vegitable Garden",
		"Renewable Energy Provider",
	),
	rules: set(
		"Children Welcome", "Pets Welcome", "Pets not Allowed", "Somke Allowed",
		"Smoke not Allowed", "Plants to Water",
	),
	remote: set("Dedicated Work Space", "High Speed Internet"),
}

// Exchange is the home-exchange taxonomy.
var Exchange = Schema{
	LocationTypes:        set("Mountain", "Beach", "City", "Wildlife Area"),
	PropertyTypes:        propertyTypes,
	Amenities:            amenityLists.amenities,
	UniqueFacilities:     amenityLists.facilities,
	KidsFriendly:         amenityLists.kids,
	EcoFriendlyAmenities: amenityLists.eco,
	HouseRules:           amenityLists.rules,
	RemoteFriendly:       amenityLists.remote,
	LocationTypeMessage:  "Choose a valid location type.",
}

// Sale is the for-sale / for-rent taxonomy.
var Sale = Schema{
	LocationTypes:        set("For Sale", "For Rent"),
	PropertyTypes:        propertyTypes,
	Amenities:            amenityLists.amenities,
	UniqueFacilities:     amenityLists.facilities,
	KidsFriendly:         amenityLists.kids,
	EcoFriendlyAmenities: amenityLists.eco,
	HouseRules:           amenityLists.rules,
	RemoteFriendly:       amenityLists.remote,
	LocationTypeMessage:  "Location type must be 'For Sale' or 'For Rent'.",
}
