package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/httpresp"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	ucBooking "github.com/HennaArtStudio/henna-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (admin)
// ======================================================

type AdminBookingHandler struct {
	listUC    *ucBooking.ListBookings
	statusUC  *ucBooking.UpdateStatus
	trashUC   *ucBooking.TrashBooking
	restoreUC *ucBooking.RestoreBooking
	purgeUC   *ucBooking.PurgeBooking
}

func NewAdminBookingHandler(
	listUC *ucBooking.ListBookings,
	statusUC *ucBooking.UpdateStatus,
	trashUC *ucBooking.TrashBooking,
	restoreUC *ucBooking.RestoreBooking,
	purgeUC *ucBooking.PurgeBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listUC:    listUC,
		statusUC:  statusUC,
		trashUC:   trashUC,
		restoreUC: restoreUC,
		purgeUC:   purgeUC,
	}
}

// ======================================================
// LISTS
// ======================================================

func (h *AdminBookingHandler) ListActive(c *gin.Context) {
	bookings, err := h.listUC.Active(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}
	httpresp.List(c, bookings)
}

func (h *AdminBookingHandler) ListTrashed(c *gin.Context) {
	bookings, err := h.listUC.Trashed(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}
	httpresp.List(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A status value is required.")
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), adminID, bookingID, domain.Status(req.Status))
	if err != nil {
		mapBookingError(c, err, "failed_to_update_booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// TRASH / RESTORE / PURGE
// ======================================================

// Trash and Purge are destructive from the admin's point of view, so
// both require an explicit confirm=true. Restore does not.

func (h *AdminBookingHandler) Trash(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	b, err := h.trashUC.Execute(c.Request.Context(), adminID, bookingID)
	if err != nil {
		mapBookingError(c, err, "failed_to_trash_booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *AdminBookingHandler) Restore(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.restoreUC.Execute(c.Request.Context(), adminID, bookingID)
	if err != nil {
		mapBookingError(c, err, "failed_to_restore_booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *AdminBookingHandler) Purge(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	if err := h.purgeUC.Execute(c.Request.Context(), adminID, bookingID); err != nil {
		mapBookingError(c, err, "failed_to_purge_booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// HELPERS
// ======================================================

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func confirmed(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		httperr.BadRequest(c, "confirmation_required", "Pass confirm=true to proceed.")
		return false
	}
	return true
}

func mapBookingError(c *gin.Context, err error, fallback string) {
	switch code := httperr.BusinessCode(err); code {
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	case "invalid_status", "booking_trashed", "already_trashed", "not_trashed":
		httperr.BadRequest(c, code, "The operation is not allowed in the booking's current state.")
	default:
		httperr.Internal(c, fallback, "Could not complete the operation.")
	}
}
