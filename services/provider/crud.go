package provider

import (
	"errors"

	providerRepo "fixify/database/repository/provider"
	"fixify/models"
	"fixify/utils"
)

// GetProviderByID fetches a provider profile.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "provider not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to retrieve provider", err)
	}
	return p, nil
}

// UpdateProfile applies the mutable profile fields. Approval and
// moderation flags are admin-owned and never taken from the body.
func (s *DefaultProviderService) UpdateProfile(id string, update models.Provider) (*models.Provider, error) {
	p, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		p.Name = update.Name
	}
	if update.Phone != "" {
		p.Phone = update.Phone
	}
	if update.ProfileImage != "" {
		p.ProfileImage = update.ProfileImage
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to update profile", err)
	}
	return p, nil
}
