package handlers

import (
	"net/http"

	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard and finance aggregates. The summaries
// already carry their wire field names, so they are returned as-is.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.usecase.DashboardSummary(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapReportError)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetFinanceSummary(c *gin.Context) {
	summary, err := h.usecase.FinanceSummary(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapReportError)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mapReportError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
