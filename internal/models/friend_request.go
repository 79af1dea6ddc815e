package models

import "time"

// FriendRequest is a directed friendship proposal. Friendship is the
// symmetric closure over accepted requests: two users are friends iff an
// accepted request exists in either direction between them.
type FriendRequest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FromUserID uint `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"from_user_id"`
	ToUserID   uint `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"to_user_id"`
	// Accepted transitions false -> true on the recipient's accept.
	// Rejection deletes the row; there are no other transitions.
	Accepted  bool      `gorm:"not null;default:false;index" json:"accepted"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	FromUser User `gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE" json:"from_user,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE" json:"to_user,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}
