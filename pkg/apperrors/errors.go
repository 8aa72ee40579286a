package apperrors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrZipCodeNotFound    = errors.New("zip code is not a registered US zip code")
	ErrEmailTaken         = errors.New("email address is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrLocationNotSet     = errors.New("user location is not set")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrInvalidReview      = errors.New("invalid review")
	ErrUnsafeContent      = errors.New("content contains disallowed markup")
)
