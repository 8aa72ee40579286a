package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/geocode"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
)

// minPasswordLength is the shortest password accepted at signup or change.
const minPasswordLength = 8

// Geocoder resolves a zip code into coordinates.
type Geocoder interface {
	ResolveLocation(ctx context.Context, zipCode string) (geocode.Coordinates, error)
}

// UserService defines account operations.
type UserService interface {
	SignUp(ctx context.Context, firstName, lastName, email, imageURL, password string) (*models.User, error)
	// Authenticate returns the user matching the credentials, or
	// apperrors.ErrInvalidCredentials for both unknown emails and wrong
	// passwords so callers can't distinguish the two.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateProfile requires the user's current password to save changes.
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, imageURL, currentPassword string) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
	// SetLocation geocodes the zip code and stores it with the coordinates.
	SetLocation(ctx context.Context, id int64, zipCode string) (*models.User, error)
}

// userService implements UserService.
type userService struct {
	userRepo repositories.UserRepository
	geocoder Geocoder
	logger   *zap.Logger
}

// NewUserService creates a new user service with dependencies.
func NewUserService(userRepo repositories.UserRepository, geocoder Geocoder, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		geocoder: geocoder,
		logger:   logger.Named("users"),
	}
}

// SignUp creates a new account with a bcrypt-hashed password.
func (s *userService) SignUp(ctx context.Context, firstName, lastName, email, imageURL, password string) (*models.User, error) {
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if imageURL == "" {
		imageURL = models.DefaultUserImageURL
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		ImageURL:     imageURL,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User signed up", zap.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate checks the credentials against the stored hash.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email maps to the same error as a wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by id.
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile changes the user's name, email and profile image after
// confirming their current password.
func (s *userService) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, imageURL, currentPassword string) (*models.User, error) {
	user, err := s.confirmPassword(ctx, id, currentPassword)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultUserImageURL
	}

	if err := s.userRepo.UpdateProfile(ctx, id, firstName, lastName, email, imageURL); err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.ImageURL = imageURL
	return user, nil
}

// UpdatePassword replaces the user's password after confirming the current one.
func (s *userService) UpdatePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	if _, err := s.confirmPassword(ctx, id, currentPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, string(hash))
}

// SetLocation geocodes the zip code and stores both it and the coordinates
// on the user, so nearby-restaurant search can run without re-entering it.
func (s *userService) SetLocation(ctx context.Context, id int64, zipCode string) (*models.User, error) {
	coords, err := s.geocoder.ResolveLocation(ctx, zipCode)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLocation(ctx, id, zipCode, coords.Latitude, coords.Longitude); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User location set",
		zap.Int64("user_id", id),
		zap.String("zip_code", zipCode))
	return user, nil
}

func (s *userService) confirmPassword(ctx context.Context, id int64, password string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Ensure userService implements UserService at compile time.
var _ UserService = (*userService)(nil)
