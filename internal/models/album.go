package models

import "time"

// Album is a named container for gallery images. Deleting an album clears
// the album reference on its images instead of deleting them.
type Album struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Images []GalleryImage `gorm:"foreignKey:AlbumID;constraint:OnDelete:SET NULL" json:"images,omitempty"`
}

// TableName specifies the table name for GORM
func (Album) TableName() string {
	return "albums"
}
