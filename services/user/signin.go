package user

import (
	"context"
	"errors"
	"strings"

	userRepo "fixify/database/repository/user"
	"fixify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn authenticates a user and issues the access/refresh token pair.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
		}
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAppError(utils.KindUnauthorized, "invalid email or password")
	}
	if !u.IsVerified {
		return nil, utils.NewAppError(utils.KindForbidden, "account is not verified")
	}
	if u.IsBlocked {
		return nil, utils.NewAppError(utils.KindBlocked, "account is blocked")
	}

	access, refresh, err := utils.GenerateTokenPair(u.ID, utils.RoleUser)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "authentication failed, please try again", err)
	}

	// Invalidate any stale block-status cache entry for this principal.
	cacheKey := utils.AuthCachePrefix + utils.RoleUser + ":" + u.ID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("SignIn: failed to clear auth cache", zap.Error(err))
	}

	return &AuthResponse{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken validates a refresh token, re-checks the live block
// status and issues a fresh access token. Refresh tokens are not
// rotated; a leaked one stays valid until natural expiry.
func (s *DefaultUserService) RefreshToken(refreshToken string) (string, error) {
	claims, err := utils.ExtractClaims(refreshToken)
	if err != nil {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}
	if claims.Role != utils.RoleUser {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}

	u, err := s.Repo.GetByID(claims.Subject)
	if err != nil {
		return "", utils.NewAppError(utils.KindUnauthorized, "invalid refresh token")
	}
	if u.IsBlocked {
		return "", utils.NewAppError(utils.KindBlocked, "account is blocked")
	}

	access, err := utils.GenerateToken(u.ID, utils.RoleUser, utils.AccessTokenTTL)
	if err != nil {
		return "", utils.WrapAppError(utils.KindInternal, "failed to refresh token", err)
	}
	return access, nil
}
