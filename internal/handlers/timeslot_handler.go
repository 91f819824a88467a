package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
	"github.com/HennaArtStudio/henna-booking-api/internal/usecase/schedule"
)

type TimeSlotHandler struct {
	db           *gorm.DB
	availability *schedule.GetAvailability
}

func NewTimeSlotHandler(db *gorm.DB, availability *schedule.GetAvailability) *TimeSlotHandler {
	return &TimeSlotHandler{db: db, availability: availability}
}

// --------- Requests ---------

type CreateTimeSlotRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// Slots are offered on quarter-hour boundaries.
func isQuarterHour(t time.Time) bool {
	return t.Minute()%15 == 0
}

// --------- Admin ---------

func (h *TimeSlotHandler) List(c *gin.Context) {
	var slots []models.TimeSlot
	if err := h.db.Order("date ASC, time ASC").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_time_slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Both date and time are required.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	t, err := time.Parse("15:04", req.Time)
	if err != nil || !isQuarterHour(t) {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:mm on a quarter hour.")
		return
	}

	slot := models.TimeSlot{
		Date:        req.Date,
		Time:        t.Format("15:04"),
		IsAvailable: true,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_slot", "Could not create the time slot.")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *TimeSlotHandler) ToggleAvailability(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var slot models.TimeSlot
	if err := h.db.First(&slot, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "time_slot_not_found", "Time slot not found.")
		return
	}

	slot.IsAvailable = !slot.IsAvailable
	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_slot", "Could not update the time slot.")
		return
	}

	writeAudit(h.db, &adminID, "time_slot_toggled", "time_slot", &slot.ID, gin.H{
		"date":         slot.Date,
		"time":         slot.Time,
		"is_available": slot.IsAvailable,
	})

	c.JSON(http.StatusOK, slot)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var slot models.TimeSlot
	if err := h.db.First(&slot, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "time_slot_not_found", "Time slot not found.")
		return
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_time_slot", "Could not delete the time slot.")
		return
	}

	writeAudit(h.db, &adminID, "time_slot_deleted", "time_slot", &slot.ID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Public ---------

func (h *TimeSlotHandler) AvailabilityForDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	times, err := h.availability.TimesForDate(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"times": times,
	})
}

func (h *TimeSlotHandler) AvailableDates(c *gin.Context) {
	dates, err := h.availability.AvailableDates(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute available dates.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
