package models

// DefaultMenuItemImageURL is used when the upstream record has no image.
const DefaultMenuItemImageURL = "/static/images/default-menu-item-image.jpg"

// MenuItem is a chain restaurant's menu item. Menu items belong to a chain,
// not to a specific location, so the chain name is what ties an item back to
// the restaurants it is served at. Keyed by the external search API's item id.
type MenuItem struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	RestaurantChain string `json:"restaurant_chain"`
	ImageURL        string `json:"image_url"`
}
