package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// ======================================================
// HANDLER (site settings)
// ======================================================

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

func isKnownSettingKey(key string) bool {
	switch key {
	case models.SettingAddress, models.SettingContactInfo, models.SettingGeneral:
		return true
	}
	return false
}

// Get is public. A key that was never written reads as an empty
// document rather than a 404 so the site renders with defaults.
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	if !isKnownSettingKey(key) {
		httperr.NotFound(c, "unknown_setting_key", "Unknown settings key.")
		return
	}

	var setting models.Setting
	err := h.db.WithContext(c.Request.Context()).
		Where("key = ?", key).
		First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"key": key, "value": models.JSONValue{}})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_setting", "Could not load the setting.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": setting.Key, "value": setting.Value})
}

type UpdateSettingRequest struct {
	Value models.JSONValue `json:"value" binding:"required"`
}

// Put replaces the whole document for the key.
func (h *SettingsHandler) Put(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	key := c.Param("key")
	if !isKnownSettingKey(key) {
		httperr.NotFound(c, "unknown_setting_key", "Unknown settings key.")
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A value document is required.")
		return
	}

	setting := models.Setting{Key: key, Value: req.Value}
	err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		httperr.Internal(c, "failed_to_save_setting", "Could not save the setting.")
		return
	}

	writeAudit(h.db, &adminID, "setting_updated", "setting", nil, map[string]any{
		"key": key,
	})

	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}
