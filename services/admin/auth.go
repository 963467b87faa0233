package admin

import (
	"errors"
	"strings"

	adminRepo "fixify/database/repository/admin"
	"fixify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn authenticates an admin and issues the access/refresh token pair.
// Admin accounts are provisioned out of band; there is no sign-up flow.
func (s *DefaultAdminService) SignIn(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	a, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
		}
		utils.GetLogger().Error("admin SignIn: failed to fetch admin", zap.Error(err))
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
	}

	access, refresh, err := utils.GenerateTokenPair(a.ID, utils.RoleAdmin)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}
	return &AuthResponse{Admin: a, AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken validates an admin refresh token and issues a new access token.
func (s *DefaultAdminService) RefreshToken(refreshToken string) (string, error) {
	claims, err := utils.ExtractClaims(refreshToken)
	if err != nil || claims.Role != utils.RoleAdmin {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}

	if _, err := s.Repo.GetByID(claims.Subject); err != nil {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}

	access, err := utils.GenerateToken(claims.Subject, utils.RoleAdmin, utils.AccessTokenTTL)
	if err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "failed to refresh token", err)
	}
	return access, nil
}
