package userRepo

import (
	"errors"

	"fixify/models"
)

// ErrNotFound distinguishes a missing user from a database failure.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetBlocked flips the moderation block flag.
	SetBlocked(id string, blocked bool) error
	// SetVerified marks the account's email as verified.
	SetVerified(id string) error
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(id, passwordHash string) error
}
