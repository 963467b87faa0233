package report

import (
	"errors"

	providerRepo "fixify/database/repository/provider"
	reportRepo "fixify/database/repository/report"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService files complaints against users or providers. There is
// no workflow past listing; blocks are a manual admin action.
type ReportService interface {
	CreateReport(reporterID, reportedID, reportedRole, reason, bookingID string) (*models.Report, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo         reportRepo.ReportRepository
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
}

func (s *DefaultReportService) CreateReport(reporterID, reportedID, reportedRole, reason, bookingID string) (*models.Report, error) {
	if !models.ValidReportReason(reason) {
		return nil, utils.NewAppError(utils.KindInvalid, "unknown report reason")
	}
	if reporterID == reportedID {
		return nil, utils.NewAppError(utils.KindInvalid, "you cannot report yourself")
	}

	switch reportedRole {
	case utils.RoleUser:
		if _, err := s.UserRepo.GetByID(reportedID); err != nil {
			if errors.Is(err, userRepo.ErrNotFound) {
				return nil, utils.NewAppError(utils.KindNotFound, "reported user not found")
			}
			return nil, utils.WrapAppError(utils.KindInternal, "failed to verify reported account", err)
		}
	case utils.RoleProvider:
		if _, err := s.ProviderRepo.GetByID(reportedID); err != nil {
			if errors.Is(err, providerRepo.ErrNotFound) {
				return nil, utils.NewAppError(utils.KindNotFound, "reported provider not found")
			}
			return nil, utils.WrapAppError(utils.KindInternal, "failed to verify reported account", err)
		}
	default:
		return nil, utils.NewAppError(utils.KindInvalid, "reported role must be user or provider")
	}

	r := &models.Report{
		ID:           uuid.New().String(),
		ReporterID:   reporterID,
		ReportedID:   reportedID,
		ReportedRole: reportedRole,
		Reason:       reason,
		BookingID:    bookingID,
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to file report", err)
	}

	utils.GetLogger().Info("report filed",
		zap.String("reportId", r.ID),
		zap.String("reportedId", reportedID),
		zap.String("reason", reason))
	return r, nil
}
