package user

import (
	"errors"

	"fixify/config"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/services/socialauth"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GoogleSignIn verifies a Google ID token, creating a verified account on
// first use, then issues the token pair.
func (s *DefaultUserService) GoogleSignIn(idToken string) (*AuthResponse, error) {
	info, err := socialauth.ValidateGoogleToken(idToken, config.AppConfig.GoogleClientID)
	if err != nil {
		utils.GetLogger().Warn("GoogleSignIn: token validation failed", zap.Error(err))
		return nil, utils.NewAppError(utils.KindUnauthorized, "invalid Google token")
	}

	u, err := s.Repo.GetByEmail(info.Email)
	if err != nil {
		if !errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
		}
		// First sign-in: Google already verified the address.
		u = &models.User{
			ID:         uuid.New().String(),
			Name:       info.Name,
			Email:      info.Email,
			IsVerified: true,
			GoogleAuth: true,
		}
		if err := s.Repo.Create(u); err != nil {
			return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
		}
	}

	if u.IsBlocked {
		return nil, utils.NewAppError(utils.KindBlocked, "account is blocked")
	}

	access, refresh, err := utils.GenerateTokenPair(u.ID, utils.RoleUser)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}
	return &AuthResponse{User: u, AccessToken: access, RefreshToken: refresh}, nil
}
