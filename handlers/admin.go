package handlers

import (
	"net/http"
	"strconv"

	adminService "fixify/services/admin"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the moderation endpoints.
type AdminHandler struct {
	Service adminService.AdminService
}

func NewAdminHandler(svc adminService.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) SignIn(c *gin.Context) {
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
		logger.Warn("admin sign-in failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"admin": resp.Admin})
}

func (h *AdminHandler) Refresh(c *gin.Context) {
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

func (h *AdminHandler) SignOut(c *gin.Context) {
	clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListProviders(c *gin.Context) {
	providers, err := h.Service.ListProviders()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *AdminHandler) setBlocked(c *gin.Context, apply func(id string, blocked bool) error) {
	var req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := apply(c.Param("id"), *req.Blocked); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block status updated"})
}

func (h *AdminHandler) SetUserBlocked(c *gin.Context) {
	h.setBlocked(c, h.Service.SetUserBlocked)
}

func (h *AdminHandler) SetProviderBlocked(c *gin.Context) {
	h.setBlocked(c, h.Service.SetProviderBlocked)
}

func (h *AdminHandler) ListApprovals(c *gin.Context) {
	pendingOnly, _ := strconv.ParseBool(c.Query("pending"))
	approvals, err := h.Service.ListApprovals(pendingOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approvals)
}

// DecideApproval approves or rejects a pending application.
func (h *AdminHandler) DecideApproval(c *gin.Context) {
	var req struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.DecideApproval(c.Param("id"), *req.Approve); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval decided"})
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	svc, err := h.Service.CreateService(req.Name, req.Description, req.ImageURL)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	svc, err := h.Service.UpdateService(c.Param("id"), req.Name, req.Description, req.ImageURL)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *AdminHandler) SetServiceActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.SetServiceActive(c.Param("id"), *req.Active); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

func (h *AdminHandler) ListServices(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	services, err := h.Service.ListServices(activeOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.Service.ListReports(c.Query("reported"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.Service.Dashboard()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
