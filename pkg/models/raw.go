package models

// Raw records are the external search API's representation of restaurants and
// menu items. They live for a single request and are never persisted as-is;
// mapping to persisted form happens in this package so every consumer agrees
// on field semantics.

// RawAddress is the address object attached to a raw restaurant record.
type RawAddress struct {
	StreetAddr string  `json:"street_addr"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	Zipcode    string  `json:"zipcode"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// RawHours holds a restaurant's operating hours keyed by capitalized weekday
// name ("Sunday" .. "Saturday").
type RawHours struct {
	Operational map[string]string `json:"operational"`
}

// RawRestaurant is one restaurant location as returned by the search API.
type RawRestaurant struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Address     RawAddress `json:"address"`
	Cuisines    []string   `json:"cuisines"`
	Description string     `json:"description"`
	PhoneNumber int64      `json:"phone_number"`
	StorePhotos []string   `json:"store_photos"`
	LogoPhotos  []string   `json:"logo_photos"`
	LocalHours  RawHours   `json:"local_hours"`
}

// RawMenuItem is one menu item as returned by the search API.
type RawMenuItem struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	RestaurantChain string `json:"restaurantChain"`
	Image           string `json:"image"`
}
