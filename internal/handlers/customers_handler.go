package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/httpresp"
)

// ======================================================
// HANDLER (admin customer list)
// ======================================================

type CustomersHandler struct {
	repo domain.Repository
}

func NewCustomersHandler(repo domain.Repository) *CustomersHandler {
	return &CustomersHandler{repo: repo}
}

func (h *CustomersHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListActiveBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, domain.GroupByCustomer(bookings))
}
