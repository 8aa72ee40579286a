package models

import (
	"fmt"
	"strings"
)

// ToRestaurant maps a raw search record to its persisted form. Fields the raw
// record cannot supply become nil; the photo URL falls back to the default
// placeholder rather than null.
func (r RawRestaurant) ToRestaurant() *Restaurant {
	return &Restaurant{
		ID:          r.ID,
		Name:        r.Name,
		Address:     BuildAddressString(r.Address),
		Cuisines:    BuildCuisineString(r.Cuisines),
		Description: optionalString(r.Description),
		Phone:       FormatPhoneNumber(r.PhoneNumber),
		PhotoURL:    r.PhotoURL(),
		Latitude:    r.Address.Lat,
		Longitude:   r.Address.Lon,

		SundayHours:    r.hoursFor("Sunday"),
		MondayHours:    r.hoursFor("Monday"),
		TuesdayHours:   r.hoursFor("Tuesday"),
		WednesdayHours: r.hoursFor("Wednesday"),
		ThursdayHours:  r.hoursFor("Thursday"),
		FridayHours:    r.hoursFor("Friday"),
		SaturdayHours:  r.hoursFor("Saturday"),
	}
}

// PhotoURL picks the display photo for a raw restaurant record: first store
// photo, then first logo photo, then the default placeholder.
func (r RawRestaurant) PhotoURL() string {
	if len(r.StorePhotos) > 0 {
		return r.StorePhotos[0]
	}
	if len(r.LogoPhotos) > 0 {
		return r.LogoPhotos[0]
	}
	return DefaultRestaurantImageURL
}

func (r RawRestaurant) hoursFor(day string) *string {
	if r.LocalHours.Operational == nil {
		return nil
	}
	return optionalString(r.LocalHours.Operational[day])
}

// ToMenuItem maps a raw menu item record to its persisted form.
func (m RawMenuItem) ToMenuItem() *MenuItem {
	imageURL := m.Image
	if imageURL == "" {
		imageURL = DefaultMenuItemImageURL
	}
	return &MenuItem{
		ID:              m.ID,
		Title:           m.Title,
		RestaurantChain: m.RestaurantChain,
		ImageURL:        imageURL,
	}
}

// BuildAddressString joins the present parts of an address object into one
// comma-separated string for storage. Returns nil if no parts are present.
func BuildAddressString(addr RawAddress) *string {
	var parts []string
	for _, part := range []string{addr.StreetAddr, addr.City, addr.State, addr.Zipcode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// BuildCuisineString joins a raw record's cuisine list into one string.
// Returns nil for an empty list.
func BuildCuisineString(cuisines []string) *string {
	if len(cuisines) == 0 {
		return nil
	}
	joined := strings.Join(cuisines, ", ")
	return &joined
}

// FormatPhoneNumber formats a raw record's numeric phone number, which is
// either 10 or 11 digits. Anything else (including the zero value for a
// missing number) formats to nil.
func FormatPhoneNumber(phone int64) *string {
	digits := fmt.Sprintf("%d", phone)
	switch len(digits) {
	case 10:
		formatted := "(" + digits[0:3] + ")-" + digits[3:6] + "-" + digits[6:]
		return &formatted
	case 11:
		formatted := digits[0:1] + "-(" + digits[1:4] + ")-" + digits[4:7] + "-" + digits[7:]
		return &formatted
	default:
		return nil
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
