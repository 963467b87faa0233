package provider

import (
	"fixify/cron"
	approvalRepo "fixify/database/repository/approval"
	providerRepo "fixify/database/repository/provider"
	scheduleRepo "fixify/database/repository/schedule"
	serviceRepo "fixify/database/repository/service"
	"fixify/models"
)

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Provider     *models.Provider `json:"provider"`
	AccessToken  string           `json:"-"`
	RefreshToken string           `json:"-"`
}

// ProviderService defines the technician-facing account and schedule operations.
type ProviderService interface {
	SignUp(name, email, password, phone string) (string, error)
	VerifyOTP(email, code string) error
	ResendOTP(email string) error
	SignIn(email, password string) (*AuthResponse, error)
	RefreshToken(refreshToken string) (string, error)
	GetProviderByID(id string) (*models.Provider, error)
	UpdateProfile(id string, update models.Provider) (*models.Provider, error)

	// ApplyForApproval submits the admin-reviewed application that gates
	// schedule publishing. One pending application per provider.
	ApplyForApproval(providerID, serviceID, experience string, imageURLs []string) (*models.Approval, error)

	// CreateSchedule publishes the fixed slot grid for one date.
	// Approved providers only; one schedule per provider per date.
	CreateSchedule(providerID, date, location string) (*models.Schedule, error)
	ListSchedules(providerID, fromDate string) ([]models.Schedule, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo         providerRepo.ProviderRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	ApprovalRepo approvalRepo.ApprovalRepository
	ServiceRepo  serviceRepo.ServiceRepository
	Mail         *cron.MailQueue
}
