package admin

import (
	"context"
	"errors"

	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list users", err)
	}
	return users, nil
}

func (s *DefaultAdminService) ListProviders() ([]models.Provider, error) {
	providers, err := s.ProviderRepo.GetAll()
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list providers", err)
	}
	return providers, nil
}

// SetUserBlocked flips a customer's block flag. The cached block status
// is dropped so the middleware re-reads it on the next request instead
// of waiting out the cache TTL.
func (s *DefaultAdminService) SetUserBlocked(id string, blocked bool) error {
	if err := s.UserRepo.SetBlocked(id, blocked); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "user not found")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to update user", err)
	}
	dropAuthCache(utils.RoleUser, id)
	utils.GetLogger().Info("user block flag updated",
		zap.String("userId", id), zap.Bool("blocked", blocked))
	return nil
}

func (s *DefaultAdminService) SetProviderBlocked(id string, blocked bool) error {
	if err := s.ProviderRepo.SetBlocked(id, blocked); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "provider not found")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to update provider", err)
	}
	dropAuthCache(utils.RoleProvider, id)
	utils.GetLogger().Info("provider block flag updated",
		zap.String("providerId", id), zap.Bool("blocked", blocked))
	return nil
}

func dropAuthCache(role, id string) {
	key := utils.AuthCachePrefix + role + ":" + id
	if err := utils.GetAuthCacheClient().Del(context.Background(), key).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear auth cache", zap.String("key", key), zap.Error(err))
	}
}
