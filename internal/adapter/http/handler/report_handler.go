package handler

import (
	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves ledger-wide reports.
type ReportHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportingSvc ports.ReportingService) *ReportHandler {
	return &ReportHandler{reportingSvc: reportingSvc}
}

// Summary handles GET /api/v1/reports/summary.
func (h *ReportHandler) Summary(c *gin.Context) {
	response.OK(c, dto.ToSummaryResponse(h.reportingSvc.Summary()))
}
