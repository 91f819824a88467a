package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/httpresp"
	ucBooking "github.com/HennaArtStudio/henna-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (admin reporting)
// ======================================================

type ReportHandler struct {
	statsUC *ucBooking.DashboardStats
	dailyUC *ucBooking.DailyReport
}

func NewReportHandler(
	statsUC *ucBooking.DashboardStats,
	dailyUC *ucBooking.DailyReport,
) *ReportHandler {
	return &ReportHandler{
		statsUC: statsUC,
		dailyUC: dailyUC,
	}
}

func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) Daily(c *gin.Context) {
	rows, err := h.dailyUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build the daily report.")
		return
	}

	httpresp.List(c, rows)
}
