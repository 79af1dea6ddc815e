package models

import "time"

// Testimonial is a wall post authored by one user on another's profile.
// Hidden testimonials stay visible to the profile owner only.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsHidden  bool      `gorm:"not null;default:false" json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Testimonial) TableName() string {
	return "testimonials"
}
