package admin

import (
	adminRepo "fixify/database/repository/admin"
	approvalRepo "fixify/database/repository/approval"
	bookingRepo "fixify/database/repository/booking"
	providerRepo "fixify/database/repository/provider"
	reportRepo "fixify/database/repository/report"
	serviceRepo "fixify/database/repository/service"
	userRepo "fixify/database/repository/user"
	"fixify/models"
)

// AuthResponse is returned on successful admin authentication.
type AuthResponse struct {
	Admin        *models.Admin `json:"admin"`
	AccessToken  string        `json:"-"`
	RefreshToken string        `json:"-"`
}

// DashboardCounts is the admin landing-page summary.
type DashboardCounts struct {
	Users            int64 `json:"users"`
	Providers        int64 `json:"providers"`
	PendingApprovals int64 `json:"pending_approvals"`
	Bookings         int64 `json:"bookings"`
	Reports          int64 `json:"reports"`
}

// AdminService covers moderation: accounts, provider approvals, the
// service catalog and reports.
type AdminService interface {
	SignIn(email, password string) (*AuthResponse, error)
	RefreshToken(refreshToken string) (string, error)

	ListUsers() ([]models.User, error)
	ListProviders() ([]models.Provider, error)
	// SetUserBlocked flips a customer's block flag and invalidates the
	// cached block status so in-flight sessions see it immediately.
	SetUserBlocked(id string, blocked bool) error
	SetProviderBlocked(id string, blocked bool) error

	ListApprovals(pendingOnly bool) ([]models.Approval, error)
	// DecideApproval approves or rejects a pending application. Approval
	// also pins the service on the provider record.
	DecideApproval(approvalID string, approve bool) error

	CreateService(name, description, imageURL string) (*models.Service, error)
	UpdateService(id, name, description, imageURL string) (*models.Service, error)
	SetServiceActive(id string, active bool) error
	ListServices(activeOnly bool) ([]models.Service, error)

	ListReports(reportedID string) ([]models.Report, error)
	Dashboard() (*DashboardCounts, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo         adminRepo.AdminRepository
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
	ApprovalRepo approvalRepo.ApprovalRepository
	ServiceRepo  serviceRepo.ServiceRepository
	ReportRepo   reportRepo.ReportRepository
	BookingRepo  bookingRepo.BookingRepository
}
