package models

import (
	"time"
)

// DefaultUserImageURL is used when a user signs up without a profile picture.
const DefaultUserImageURL = "/static/images/default-profile-image.jpg"

// User is an account holder. Users sign up with a name, unique email and
// password; once logged in they can set a home location by zip code, which is
// geocoded and stored so nearby-restaurant search works without re-entering it.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ImageURL     string    `json:"image_url"`
	AddressZip   *string   `json:"address_zip,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the user's first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasLocation reports whether the user has set a home location.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}
