package handlers

import (
	"net/http"

	"fixify/middleware"
	bookingService "fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the slot-reservation workflow.
type BookingHandler struct {
	Service bookingService.BookingService
}

func NewBookingHandler(svc bookingService.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// RequestSlot raises a pending request against an available slot.
func (h *BookingHandler) RequestSlot(c *gin.Context) {
	var req struct {
		ScheduleID  string `json:"scheduleId" binding:"required"`
		Time        string `json:"time" binding:"required"`
		Address     string `json:"address" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	request, err := h.Service.RequestSlot(c.Request.Context(),
		middleware.PrincipalID(c), req.ScheduleID, req.Time, req.Address, req.Description)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// DecideRequest is the provider's accept/reject on a pending request.
func (h *BookingHandler) DecideRequest(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	booking, err := h.Service.ChangeRequestStatus(c.Request.Context(),
		middleware.PrincipalID(c), c.Param("requestId"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if booking == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// Cancel is the customer-initiated cancellation.
func (h *BookingHandler) Cancel(c *gin.Context) {
	err := h.Service.CancelBooking(c.Request.Context(), middleware.PrincipalID(c), c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) ListForUser(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(middleware.PrincipalID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListForProvider(c *gin.Context) {
	bookings, err := h.Service.ListProviderBookings(middleware.PrincipalID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// OpenSlots lists a provider's still-available slots for a date.
func (h *BookingHandler) OpenSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}

	schedule, slots, err := h.Service.GetOpenSlots(c.Param("providerId"), date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scheduleId": schedule.ID,
		"date":       schedule.Date,
		"location":   schedule.Location,
		"slots":      slots,
	})
}

// Review rates a completed booking.
func (h *BookingHandler) Review(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	review, err := h.Service.LeaveReview(middleware.PrincipalID(c), c.Param("bookingId"), req.Rating, req.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
