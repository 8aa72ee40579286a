package models

// DefaultRestaurantImageURL is used when the upstream record has no photos.
const DefaultRestaurantImageURL = "/static/images/default-restaurant-image.jpg"

// Restaurant is a restaurant location, NOT a restaurant chain. Each physical
// location is its own row, keyed by the external search API's stable
// identifier. The id is immutable after creation and is the sole
// reconciliation key for upserts.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Cuisines    *string `json:"cuisines,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	PhotoURL    string  `json:"photo_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	SundayHours    *string `json:"sunday_hours,omitempty"`
	MondayHours    *string `json:"monday_hours,omitempty"`
	TuesdayHours   *string `json:"tuesday_hours,omitempty"`
	WednesdayHours *string `json:"wednesday_hours,omitempty"`
	ThursdayHours  *string `json:"thursday_hours,omitempty"`
	FridayHours    *string `json:"friday_hours,omitempty"`
	SaturdayHours  *string `json:"saturday_hours,omitempty"`
}
