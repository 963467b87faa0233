package user

import (
	"errors"

	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"
)

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "user not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to retrieve user", err)
	}
	return u, nil
}

// UpdateProfile applies the mutable profile fields. Auth and moderation
// fields are never taken from the request body.
func (s *DefaultUserService) UpdateProfile(id string, update models.User) (*models.User, error) {
	u, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.ProfileImage != "" {
		u.ProfileImage = update.ProfileImage
	}

	if err := s.Repo.Update(u); err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to update profile", err)
	}
	return u, nil
}
