package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/models"
	userService "fixify/services/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the customer-facing account endpoints.
type UserHandler struct {
	Service userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// SignUp registers a customer and sends the verification OTP.
func (h *UserHandler) SignUp(c *gin.Context) {
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

	userID, err := h.Service.SignUp(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		logger.Error("user sign-up failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      userID,
		"message": "Verification code sent to your email",
	})
}

// VerifyOTP completes email verification.
func (h *UserHandler) VerifyOTP(c *gin.Context) {
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

// ResendOTP issues a fresh verification code.
func (h *UserHandler) ResendOTP(c *gin.Context) {
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

// SignIn authenticates and sets the token cookies.
func (h *UserHandler) SignIn(c *gin.Context) {
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
		logger.Warn("user sign-in failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

// GoogleSignIn verifies a Google ID token and signs the user in.
func (h *UserHandler) GoogleSignIn(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.GoogleSignIn(req.IDToken)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

// Refresh issues a new access token from the refresh cookie.
func (h *UserHandler) Refresh(c *gin.Context) {
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

// SignOut clears the token cookies.
func (h *UserHandler) SignOut(c *gin.Context) {
	clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Profile returns the authenticated customer's account.
func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.Service.GetUserByID(middleware.PrincipalID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile edits name, phone and profile image.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	u, err := h.Service.UpdateProfile(middleware.PrincipalID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
