package admin

import (
	"errors"

	approvalRepo "fixify/database/repository/approval"
	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) ListApprovals(pendingOnly bool) ([]models.Approval, error) {
	var (
		approvals []models.Approval
		err       error
	)
	if pendingOnly {
		approvals, err = s.ApprovalRepo.ListPending()
	} else {
		approvals, err = s.ApprovalRepo.ListAll()
	}
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list approvals", err)
	}
	return approvals, nil
}

// DecideApproval settles a pending application. The approval document is
// decided first; only a successful decision touches the provider record,
// so a lost race with another admin leaves the provider untouched.
func (s *DefaultAdminService) DecideApproval(approvalID string, approve bool) error {
	approval, err := s.ApprovalRepo.GetByID(approvalID)
	if err != nil {
		if errors.Is(err, approvalRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "approval not found")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to load approval", err)
	}

	status := models.ApprovalRejected
	if approve {
		status = models.ApprovalApproved
	}
	if err := s.ApprovalRepo.Decide(approvalID, status); err != nil {
		if errors.Is(err, approvalRepo.ErrAlreadyDecided) {
			return utils.NewAppError(utils.KindConflict, "approval has already been decided")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to decide approval", err)
	}

	if approve {
		if err := s.ProviderRepo.SetApproved(approval.ProviderID, approval.ServiceID, true); err != nil {
			return utils.WrapAppError(utils.KindInternal, "failed to approve provider", err)
		}
	}

	utils.GetLogger().Info("approval decided",
		zap.String("approvalId", approvalID),
		zap.String("providerId", approval.ProviderID),
		zap.String("status", status))
	return nil
}
