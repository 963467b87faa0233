package handlers

import (
	"net/http"

	"fixify/middleware"
	reportService "fixify/services/report"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler lets customers and providers file complaints.
type ReportHandler struct {
	Service reportService.ReportService
}

func NewReportHandler(svc reportService.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req struct {
		ReportedID   string `json:"reportedId" binding:"required"`
		ReportedRole string `json:"reportedRole" binding:"required"`
		Reason       string `json:"reason" binding:"required"`
		BookingID    string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	report, err := h.Service.CreateReport(middleware.PrincipalID(c),
		req.ReportedID, req.ReportedRole, req.Reason, req.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
