package admin

import (
	"fixify/models"
	"fixify/utils"
)

func (s *DefaultAdminService) ListReports(reportedID string) ([]models.Report, error) {
	var (
		reports []models.Report
		err     error
	)
	if reportedID != "" {
		reports, err = s.ReportRepo.ListByReported(reportedID)
	} else {
		reports, err = s.ReportRepo.ListAll()
	}
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list reports", err)
	}
	return reports, nil
}

// Dashboard aggregates the landing-page counts. The account and report
// collections are small enough to count via full listings; bookings get
// a dedicated count.
func (s *DefaultAdminService) Dashboard() (*DashboardCounts, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load dashboard", err)
	}
	providers, err := s.ProviderRepo.GetAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load dashboard", err)
	}
	pending, err := s.ApprovalRepo.ListPending()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load dashboard", err)
	}
	reports, err := s.ReportRepo.ListAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load dashboard", err)
	}
	bookings, err := s.BookingRepo.CountAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load dashboard", err)
	}

	return &DashboardCounts{
		Users:            int64(len(users)),
		Providers:        int64(len(providers)),
		PendingApprovals: int64(len(pending)),
		Bookings:         bookings,
		Reports:          int64(len(reports)),
	}, nil
}
