package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/httpresp"
	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
	"github.com/HennaArtStudio/henna-booking-api/internal/media"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// maxUploadBytes caps a single media upload (videos included).
const maxUploadBytes = 50 << 20

// ======================================================
// HANDLER (site media)
// ======================================================

type MediaHandler struct {
	db    *gorm.DB
	store *media.Store
}

func NewMediaHandler(db *gorm.DB, store *media.Store) *MediaHandler {
	return &MediaHandler{db: db, store: store}
}

// ======================================================
// LIST
// ======================================================

// List is public; the site reads every coordinate at once and picks
// what each page section needs.
func (h *MediaHandler) List(c *gin.Context) {
	var items []models.SiteMedia

	q := h.db.WithContext(c.Request.Context()).
		Order("section ASC, subsection ASC, slot_index ASC")

	if section := c.Query("section"); section != "" {
		q = q.Where("section = ?", section)
	}

	if err := q.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_media", "Could not list site media.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// UPLOAD
// ======================================================

// Upload stores a file at a page coordinate. Images are re-encoded to
// webp; videos are stored as received. An occupied coordinate is
// replaced: the old object and row go away before the new ones land.
func (h *MediaHandler) Upload(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	section := strings.TrimSpace(c.PostForm("section"))
	subsection := strings.TrimSpace(c.PostForm("subsection"))
	mediaType := strings.TrimSpace(c.PostForm("media_type"))
	slotIndex, slotErr := strconv.Atoi(c.PostForm("slot_index"))

	if section == "" || slotErr != nil || slotIndex < 0 {
		httperr.BadRequest(c, "invalid_media_coordinate", "A section and a non-negative slot index are required.")
		return
	}
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		httperr.BadRequest(c, "invalid_media_type", "Media type must be image or video.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "The file exceeds the upload limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	coord := fmt.Sprintf("%s_%s_%d_%s", section, subsection, slotIndex, mediaType)
	ctx := c.Request.Context()

	var key, contentType string
	var body *bytes.Reader

	if mediaType == models.MediaTypeImage {
		encoded, err := media.ReencodeWebP(file)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "The file is not a readable image.")
			return
		}
		key = fmt.Sprintf("siteMedia/%s_%s.webp", coord, uuid.NewString())
		contentType = "image/webp"
		body = bytes.NewReader(encoded)
	} else {
		raw, err := io.ReadAll(file)
		if err != nil {
			httperr.Internal(c, "failed_to_read_file", "Could not read the uploaded file.")
			return
		}
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext == "" {
			ext = ".mp4"
		}
		key = fmt.Sprintf("siteMedia/%s_%s%s", coord, uuid.NewString(), ext)
		contentType = fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		body = bytes.NewReader(raw)
	}

	url, err := h.store.Upload(ctx, key, contentType, body)
	if err != nil {
		httperr.Internal(c, "failed_to_store_media", "Could not store the file.")
		return
	}

	// Replace whatever already sits at this coordinate.
	var existing []models.SiteMedia
	h.db.WithContext(ctx).
		Where("section = ? AND subsection = ? AND slot_index = ? AND media_type = ?",
			section, subsection, slotIndex, mediaType).
		Find(&existing)

	for _, old := range existing {
		if old.StorageKey != "" {
			if err := h.store.Delete(ctx, old.StorageKey); err != nil {
				logger.Log.Warn("failed to delete replaced media object",
					zap.String("key", old.StorageKey), zap.Error(err))
			}
		}
		h.db.WithContext(ctx).Delete(&models.SiteMedia{}, old.ID)
	}

	item := models.SiteMedia{
		Section:    section,
		Subsection: subsection,
		SlotIndex:  slotIndex,
		MediaType:  mediaType,
		Name:       fileHeader.Filename,
		URL:        url,
		StorageKey: key,
	}

	if err := h.db.WithContext(ctx).Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_save_media", "Could not save the media record.")
		return
	}

	writeAudit(h.db, &adminID, "media_uploaded", "site_media", &item.ID, map[string]any{
		"section":    section,
		"subsection": subsection,
		"slot_index": slotIndex,
		"media_type": mediaType,
	})

	c.JSON(http.StatusCreated, item)
}

// ======================================================
// DELETE
// ======================================================

func (h *MediaHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_media_id", "Media id must be numeric.")
		return
	}

	ctx := c.Request.Context()

	var item models.SiteMedia
	if err := h.db.WithContext(ctx).First(&item, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "media_not_found", "Media not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_media", "Could not load the media record.")
		return
	}

	if item.StorageKey != "" {
		if err := h.store.Delete(ctx, item.StorageKey); err != nil {
			logger.Log.Warn("failed to delete media object",
				zap.String("key", item.StorageKey), zap.Error(err))
		}
	}

	if err := h.db.WithContext(ctx).Delete(&models.SiteMedia{}, item.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_media", "Could not delete the media record.")
		return
	}

	writeAudit(h.db, &adminID, "media_deleted", "site_media", &item.ID, nil)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
