package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name   string             `json:"name" binding:"required"`
	Prices map[string]float64 `json:"prices"`
}

type UpdateServiceRequest struct {
	Name   *string            `json:"name,omitempty"`
	Prices map[string]float64 `json:"prices,omitempty"`
}

// normalizePrices keeps the three tiers, zero-filling missing ones.
// Bookings snapshot this table wholesale, so its shape stays fixed.
func normalizePrices(in map[string]float64) models.PriceTable {
	out := models.PriceTable{
		models.ComplexitySimple: 0,
		models.ComplexityMedium: 0,
		models.ComplexityHard:   0,
	}
	for tier, price := range in {
		if !models.IsValidComplexity(tier) || price < 0 {
			continue
		}
		out[tier] = price
	}
	return out
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_name_exists"})
		return
	}

	service := models.Service{
		Name:   name,
		Prices: normalizePrices(req.Prices),
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Prices != nil {
		// merge onto the current table; tiers not sent keep their price
		merged := make(map[string]float64, len(service.Prices))
		for tier, price := range service.Prices {
			merged[tier] = price
		}
		for tier, price := range req.Prices {
			merged[tier] = price
		}
		service.Prices = normalizePrices(merged)
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete removes the service from the catalog. Existing bookings keep
// their snapshots, so history is unaffected.
func (h *ServiceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}

	writeAudit(h.db, &adminID, "service_deleted", "service", &service.ID, gin.H{"name": service.Name})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
