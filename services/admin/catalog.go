package admin

import (
	"context"
	"errors"
	"strings"

	serviceRepo "fixify/database/repository/service"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// dropCatalogCache invalidates the public services listing after a
// catalog write. Best effort: the key also carries a TTL.
func dropCatalogCache() {
	if utils.CacheClient == nil {
		return
	}
	if err := utils.CacheClient.Del(context.Background(), utils.CatalogServicesKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop catalog cache", zap.Error(err))
	}
}

func (s *DefaultAdminService) CreateService(name, description, imageURL string) (*models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.NewAppError(utils.KindInvalid, "service name is required")
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
	}
	if err := s.ServiceRepo.Create(svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewAppError(utils.KindConflict, "a service with this name already exists")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to create service", err)
	}
	dropCatalogCache()
	return svc, nil
}

func (s *DefaultAdminService) UpdateService(id, name, description, imageURL string) (*models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "service not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load service", err)
	}

	if name = strings.TrimSpace(name); name != "" {
		svc.Name = name
	}
	if description != "" {
		svc.Description = description
	}
	if imageURL != "" {
		svc.ImageURL = imageURL
	}

	if err := s.ServiceRepo.Update(svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewAppError(utils.KindConflict, "a service with this name already exists")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to update service", err)
	}
	dropCatalogCache()
	return svc, nil
}

func (s *DefaultAdminService) SetServiceActive(id string, active bool) error {
	if err := s.ServiceRepo.SetActive(id, active); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "service not found")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to update service", err)
	}
	dropCatalogCache()
	return nil
}

func (s *DefaultAdminService) ListServices(activeOnly bool) ([]models.Service, error) {
	var (
		services []models.Service
		err      error
	)
	if activeOnly {
		services, err = s.ServiceRepo.ListActive()
	} else {
		services, err = s.ServiceRepo.ListAll()
	}
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list services", err)
	}
	return services, nil
}
