package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/domain/adminlist"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type MeHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewMeHandler(db *gorm.DB, cfg *config.Config) *MeHandler {
	return &MeHandler{db: db, config: cfg}
}

// GetMe returns the signed-in account plus the admin flag the client
// uses to show or hide the back-office navigation. The flag is advisory;
// every admin route re-checks the allow-list server-side.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	stored := models.EmailList{}
	var record models.AdminList
	if err := h.db.Order("id ASC").First(&record).Error; err == nil {
		stored = record.Emails
	}
	list := adminlist.New(h.config.BootstrapAdminEmail, stored)

	c.JSON(http.StatusOK, gin.H{
		"user":     userPayload(&user),
		"is_admin": list.Contains(user.Email),
	})
}
