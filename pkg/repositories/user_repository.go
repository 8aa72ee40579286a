package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/database"
	"github.com/vouch4food/vouch4food/pkg/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, imageURL string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLocation(ctx context.Context, id int64, zip string, lat, lng float64) error
}

// userRepository implements UserRepository using PostgreSQL.
type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, password_hash, image_url,
	address_zip, latitude, longitude, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.ImageURL,
		&user.AddressZip,
		&user.Latitude,
		&user.Longitude,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert adds a new user and sets the assigned id and creation time on the
// given model. Returns apperrors.ErrEmailTaken if the email is already in use.
func (r *userRepository) Insert(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.ImageURL,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id. Returns apperrors.ErrNotFound if no row exists.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email. Emails are unique, so at most one row
// matches. Returns apperrors.ErrNotFound if no row exists.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// UpdateProfile updates a user's name, email and profile image.
// Returns apperrors.ErrEmailTaken if the new email belongs to another user.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, imageURL string) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, image_url = $4
		WHERE id = $5`

	result, err := r.db.Exec(ctx, query, firstName, lastName, email, imageURL, id)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// UpdateLocation stores a user's zip code and geocoded coordinates.
func (r *userRepository) UpdateLocation(ctx context.Context, id int64, zip string, lat, lng float64) error {
	query := `UPDATE users SET address_zip = $1, latitude = $2, longitude = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, query, zip, lat, lng, id)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Ensure userRepository implements UserRepository at compile time.
var _ UserRepository = (*userRepository)(nil)
