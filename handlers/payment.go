package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/models"
	paymentService "fixify/services/payment"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes cash and Stripe payment endpoints.
type PaymentHandler struct {
	Service paymentService.PaymentService
}

func NewPaymentHandler(svc paymentService.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// Save records payment for a completed job. Cash settles immediately;
// online opens a Stripe payment intent and returns the client secret.
func (h *PaymentHandler) Save(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
		Amount    int64  `json:"amount" binding:"required"`
		Mode      string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	userID := middleware.PrincipalID(c)
	switch req.Mode {
	case models.PaymentModeCash:
		p, err := h.Service.RecordCashPayment(c.Request.Context(), userID, req.BookingID, req.Amount)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)

	case models.PaymentModeOnline:
		p, clientSecret, err := h.Service.CreatePaymentIntent(c.Request.Context(), userID, req.BookingID, req.Amount)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"payment": p, "clientSecret": clientSecret})

	default:
		utils.JSONError(c, http.StatusBadRequest, "Unknown payment mode", req.Mode)
	}
}

// Confirm settles a pending online payment after the intent succeeded.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req struct {
		IntentID string `json:"intentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	p, err := h.Service.ConfirmOnlinePayment(c.Request.Context(), middleware.PrincipalID(c), req.IntentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Get returns one payment by id.
func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.Service.GetPayment(c.Param("paymentId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
