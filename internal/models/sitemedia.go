package models

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// SiteMedia is a media asset bound to a page coordinate. At most one
// active row exists per (section, subsection, slot index, media type);
// uploading to an occupied coordinate replaces the previous asset.
type SiteMedia struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Section    string `gorm:"size:50;not null;index:idx_media_coord" json:"section"`
	Subsection string `gorm:"size:50;index:idx_media_coord" json:"subsection"`
	SlotIndex  int    `gorm:"index:idx_media_coord" json:"slot_index"`
	MediaType  string `gorm:"size:10;index:idx_media_coord" json:"media_type"`

	Name       string `gorm:"size:150" json:"name"`
	URL        string `gorm:"size:500" json:"url"`
	StorageKey string `gorm:"size:300" json:"storage_key"`

	CreatedAt time.Time `json:"created_at"`
}
