package provider

import (
	"errors"

	approvalRepo "fixify/database/repository/approval"
	serviceRepo "fixify/database/repository/service"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
)

// ApplyForApproval submits a provider's application to offer a catalog
// service. The image URLs are Cloudinary public IDs uploaded beforehand.
func (s *DefaultProviderService) ApplyForApproval(providerID, serviceID, experience string, imageURLs []string) (*models.Approval, error) {
	p, err := s.GetProviderByID(providerID)
	if err != nil {
		return nil, err
	}
	if p.IsApproved {
		return nil, utils.NewAppError(utils.KindConflict, "provider is already approved")
	}
	if experience == "" {
		return nil, utils.NewAppError(utils.KindInvalid, "experience description is required")
	}

	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "service not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to submit application", err)
	}
	if !svc.IsActive {
		return nil, utils.NewAppError(utils.KindInvalid, "service is not active")
	}

	approval := &models.Approval{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		ServiceID:  serviceID,
		Experience: experience,
		ImageURLs:  imageURLs,
		Status:     models.ApprovalPending,
	}
	if err := s.ApprovalRepo.Create(approval); err != nil {
		if errors.Is(err, approvalRepo.ErrAlreadyPending) {
			return nil, utils.NewAppError(utils.KindConflict, "an application is already pending review")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to submit application", err)
	}
	return approval, nil
}
