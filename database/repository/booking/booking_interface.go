package bookingRepo

import (
	"errors"

	"fixify/models"
)

// ErrNotFound distinguishes a missing booking from a database failure.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for materialized bookings.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListByProvider(providerID string) ([]models.Booking, error)
	SetReview(bookingID, reviewID string) error
	// CountAll returns the total number of bookings ever made.
	CountAll() (int64, error)
}
