package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/models"
	providerService "fixify/services/provider"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the technician-facing endpoints.
type ProviderHandler struct {
	Service providerService.ProviderService
}

func NewProviderHandler(svc providerService.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

func (h *ProviderHandler) SignUp(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	providerID, err := h.Service.SignUp(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		logger.Error("provider sign-up failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      providerID,
		"message": "Verification code sent to your email",
	})
}

func (h *ProviderHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.VerifyOTP(req.Email, req.Code); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account verified"})
}

func (h *ProviderHandler) ResendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.ResendOTP(req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (h *ProviderHandler) SignIn(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.SignIn(req.Email, req.Password)
	if err != nil {
		logger.Warn("provider sign-in failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"provider": resp.Provider})
}

func (h *ProviderHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(utils.RefreshTokenCookie)
	if err != nil || refresh == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Missing refresh token", "")
		return
	}

	access, err := h.Service.RefreshToken(refresh)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	setAuthCookies(c, access, "")
	c.JSON(http.StatusOK, gin.H{"message": "Token refreshed"})
}

func (h *ProviderHandler) SignOut(c *gin.Context) {
	clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *ProviderHandler) Profile(c *gin.Context) {
	p, err := h.Service.GetProviderByID(middleware.PrincipalID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	var req models.Provider
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	p, err := h.Service.UpdateProfile(middleware.PrincipalID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ApplyForApproval submits the application that gates schedule publishing.
func (h *ProviderHandler) ApplyForApproval(c *gin.Context) {
	var req struct {
		ServiceID  string   `json:"serviceId" binding:"required"`
		Experience string   `json:"experience" binding:"required"`
		ImageURLs  []string `json:"imageUrls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	approval, err := h.Service.ApplyForApproval(middleware.PrincipalID(c), req.ServiceID, req.Experience, req.ImageURLs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, approval)
}

// CreateSchedule publishes the fixed slot grid for one date.
func (h *ProviderHandler) CreateSchedule(c *gin.Context) {
	var req struct {
		Date     string `json:"date" binding:"required"`
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	schedule, err := h.Service.CreateSchedule(middleware.PrincipalID(c), req.Date, req.Location)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// ListSchedules lists the provider's own schedules, optionally from a date.
func (h *ProviderHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.Service.ListSchedules(middleware.PrincipalID(c), c.Query("from"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}
