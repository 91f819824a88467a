package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/domain/adminlist"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// AdminMiddleware gates admin routes by allow-list membership. The list
// is re-read from the store on every request so the check happens at
// the same trust boundary as the mutation, never trusting a
// client-computed flag.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.MustGet(ContextUserEmail).(string)
		if !ok || email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not_admin"})
			return
		}

		var record models.AdminList
		stored := models.EmailList{}
		if err := db.Order("id ASC").First(&record).Error; err == nil {
			stored = record.Emails
		}

		list := adminlist.New(cfg.BootstrapAdminEmail, stored)
		if !list.Contains(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not_admin"})
			return
		}

		c.Next()
	}
}
