package providerRepo

import (
	"errors"

	"fixify/models"
)

// ErrNotFound distinguishes a missing provider from a database failure.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	GetAll() ([]models.Provider, error)
	// ListApprovedByService lists approved, unblocked providers for a catalog service.
	ListApprovedByService(serviceID string) ([]models.Provider, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	SetBlocked(id string, blocked bool) error
	SetVerified(id string) error
	// SetApproved flips the approval flag and pins the approved service.
	SetApproved(id, serviceID string, approved bool) error
	UpdatePassword(id, passwordHash string) error
}
