package models

import "time"

// GalleryImage belongs to a profile and optionally to one of its albums.
type GalleryImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProfileID  uint      `gorm:"not null;index" json:"profile_id"`
	AlbumID    *uint     `gorm:"index" json:"album_id,omitempty"`
	Album      *Album    `gorm:"foreignKey:AlbumID" json:"album,omitempty"`
	Image      string    `gorm:"size:255;not null" json:"image"`
	Caption    string    `gorm:"size:255" json:"caption"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// TableName specifies the table name for GORM
func (GalleryImage) TableName() string {
	return "gallery_images"
}
