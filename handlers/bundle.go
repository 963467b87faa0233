package handlers

import (
	adminRepo "fixify/database/repository/admin"
	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
)

// HandlerBundle carries every handler plus the repositories the auth
// middleware needs for live block-status checks.
type HandlerBundle struct {
	User     *UserHandler
	Provider *ProviderHandler
	Admin    *AdminHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Report   *ReportHandler
	Chat     *ChatHandler
	Storage  *StorageHandler
	Catalog  *CatalogHandler

	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
	AdminRepo    adminRepo.AdminRepository
}
