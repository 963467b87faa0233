package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	providerRepo "fixify/database/repository/provider"
	serviceRepo "fixify/database/repository/service"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogHandler is the public browse surface: active services and the
// approved providers behind them. Read-only, no service layer needed.
// The services list is the hottest unauthenticated read, so it goes
// through the generic Redis cache; admin catalog writes drop the key.
type CatalogHandler struct {
	ServiceRepo  serviceRepo.ServiceRepository
	ProviderRepo providerRepo.ProviderRepository
	Cache        *redis.Client
}

func NewCatalogHandler(services serviceRepo.ServiceRepository, providers providerRepo.ProviderRepository, cache *redis.Client) *CatalogHandler {
	return &CatalogHandler{ServiceRepo: services, ProviderRepo: providers, Cache: cache}
}

// ListServices lists the active catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ctx := context.Background()

	if h.Cache != nil {
		if raw, err := h.Cache.Get(ctx, utils.CatalogServicesKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		} else if err != redis.Nil {
			zap.L().Warn("catalog cache read failed", zap.Error(err))
		}
	}

	services, err := h.ServiceRepo.ListActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", "")
		return
	}

	if h.Cache != nil {
		if raw, err := json.Marshal(services); err == nil {
			if err := h.Cache.Set(ctx, utils.CatalogServicesKey, raw, catalogCacheTTL).Err(); err != nil {
				zap.L().Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, services)
}

// ListProviders lists approved providers for one catalog service.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	serviceID := c.Param("serviceId")
	if _, err := h.ServiceRepo.GetByID(serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load service", "")
		return
	}

	providers, err := h.ProviderRepo.ListApprovedByService(serviceID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list providers", "")
		return
	}
	c.JSON(http.StatusOK, providers)
}
