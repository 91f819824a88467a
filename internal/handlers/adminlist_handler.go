package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/domain/adminlist"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// ======================================================
// HANDLER (admin allow-list)
// ======================================================

type AdminListHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAdminListHandler(db *gorm.DB, cfg *config.Config) *AdminListHandler {
	return &AdminListHandler{db: db, config: cfg}
}

// load reads the singleton record and folds the bootstrap address in.
// Absence of the record is not an error; the list is then just the
// bootstrap address.
func (h *AdminListHandler) load(c *gin.Context) (adminlist.List, *models.AdminList, error) {
	var record models.AdminList
	err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adminlist.New(h.config.BootstrapAdminEmail, nil), nil, nil
	}
	if err != nil {
		return adminlist.List{}, nil, err
	}

	return adminlist.New(h.config.BootstrapAdminEmail, record.Emails), &record, nil
}

func (h *AdminListHandler) save(c *gin.Context, record *models.AdminList, list adminlist.List) error {
	emails := models.EmailList(list.Emails())

	if record == nil {
		return h.db.WithContext(c.Request.Context()).
			Create(&models.AdminList{Emails: emails}).Error
	}

	record.Emails = emails
	return h.db.WithContext(c.Request.Context()).Save(record).Error
}

// ======================================================
// ROUTES
// ======================================================

func (h *AdminListHandler) Get(c *gin.Context) {
	list, _, err := h.load(c)
	if err != nil {
		httperr.Internal(c, "failed_to_load_admin_list", "Could not load the admin list.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": list.Emails()})
}

type AdminEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AdminListHandler) Add(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "An email is required.")
		return
	}

	list, record, err := h.load(c)
	if err != nil {
		httperr.Internal(c, "failed_to_load_admin_list", "Could not load the admin list.")
		return
	}

	next, err := list.Add(req.Email)
	if err != nil {
		mapAdminListError(c, err)
		return
	}

	if err := h.save(c, record, next); err != nil {
		httperr.Internal(c, "failed_to_save_admin_list", "Could not save the admin list.")
		return
	}

	writeAudit(h.db, &adminID, "admin_added", "admin_list", nil, map[string]any{
		"email": req.Email,
	})

	c.JSON(http.StatusOK, gin.H{"emails": next.Emails()})
}

func (h *AdminListHandler) Remove(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "An email is required.")
		return
	}

	list, record, err := h.load(c)
	if err != nil {
		httperr.Internal(c, "failed_to_load_admin_list", "Could not load the admin list.")
		return
	}

	next, err := list.Remove(req.Email)
	if err != nil {
		mapAdminListError(c, err)
		return
	}

	if err := h.save(c, record, next); err != nil {
		httperr.Internal(c, "failed_to_save_admin_list", "Could not save the admin list.")
		return
	}

	writeAudit(h.db, &adminID, "admin_removed", "admin_list", nil, map[string]any{
		"email": req.Email,
	})

	c.JSON(http.StatusOK, gin.H{"emails": next.Emails()})
}

func mapAdminListError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "invalid_email", "duplicate_admin_email", "admin_email_not_found":
		httperr.BadRequest(c, code, "The admin list was not changed.")
	case "bootstrap_admin_immutable":
		httperr.Forbidden(c, code, "The bootstrap admin cannot be removed.")
	default:
		httperr.Internal(c, "failed_to_update_admin_list", "Could not update the admin list.")
	}
}
