package models

import "time"

// ProfileVisit is an append-only record of a non-owner profile view.
// Every qualifying view appends a new row; there is no deduplication window.
type ProfileVisit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	VisitorID uint      `gorm:"not null;index" json:"visitor_id"`
	Visitor   User      `gorm:"foreignKey:VisitorID;constraint:OnDelete:CASCADE" json:"visitor,omitempty"`
	VisitedAt time.Time `gorm:"autoCreateTime;index" json:"visited_at"`
}

// TableName specifies the table name for GORM
func (ProfileVisit) TableName() string {
	return "profile_visits"
}
