package models

import "time"

// Privacy is a per-section visibility policy value.
type Privacy string

const (
	// PrivacyPublic makes a section visible to everyone.
	PrivacyPublic Privacy = "public"
	// PrivacyFriends is stored but grants no special access; non-owners are
	// treated the same as for PrivacyPrivate.
	PrivacyFriends Privacy = "friends"
	// PrivacyPrivate makes a section visible to the owner only.
	PrivacyPrivate Privacy = "private"
)

// Valid reports whether p is one of the recognized privacy values.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyFriends, PrivacyPrivate:
		return true
	}
	return false
}

// Profile is the customizable public-facing record owned by exactly one user.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Bio           string `gorm:"type:text" json:"bio"`
	Location      string `gorm:"size:100" json:"location"`
	Interests     string `gorm:"size:255" json:"interests"`
	StatusMessage string `gorm:"size:120" json:"status_message"`

	ProfilePic      string `gorm:"size:255" json:"profile_pic"`
	CoverPhoto      string `gorm:"size:255" json:"cover_photo"`
	BackgroundImage string `gorm:"size:255" json:"background_image"`

	ThemeChoice string `gorm:"size:20;default:default" json:"theme_choice"`
	ThemeColor  string `gorm:"size:20;default:#ffffff" json:"theme_color"`
	FontChoice  string `gorm:"size:50;default:default" json:"font_choice"`

	Music         string `gorm:"size:255" json:"music"`
	MusicAutoplay bool   `gorm:"default:false" json:"music_autoplay"`

	// ProfileViews is monotonic; incremented only by non-owner visits and
	// always via an atomic UPDATE at the storage layer.
	ProfileViews uint `gorm:"default:0" json:"profile_views"`

	ProfilePrivacy     Privacy `gorm:"type:varchar(10);default:public" json:"profile_privacy"`
	GalleryPrivacy     Privacy `gorm:"type:varchar(10);default:public" json:"gallery_privacy"`
	TestimonialPrivacy Privacy `gorm:"type:varchar(10);default:public" json:"testimonial_privacy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Testimonials []Testimonial  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"testimonials,omitempty"`
	Visits       []ProfileVisit `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"visits,omitempty"`
	TopFives     []TopFive      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"top_fives,omitempty"`
	Albums       []Album        `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"albums,omitempty"`
	Gallery      []GalleryImage `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"gallery,omitempty"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
