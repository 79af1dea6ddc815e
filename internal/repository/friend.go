package repository

import (
	"context"
	"errors"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend request data operations.
type FriendRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetPair(ctx context.Context, fromUserID, toUserID uint) (*models.FriendRequest, error)
	GetByIDForRecipient(ctx context.Context, id, toUserID uint) (*models.FriendRequest, error)
	Accept(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	GetPendingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetSentRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Friend request already sent")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetPair returns the request from one specific user to another, or nil when
// none exists. Direction matters; the reverse pair is a different row.
func (r *friendRepository) GetPair(ctx context.Context, fromUserID, toUserID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// GetByIDForRecipient fetches a request scoped to its recipient. A request
// addressed to someone else comes back as not found, never as forbidden.
func (r *friendRepository) GetByIDForRecipient(ctx context.Context, id, toUserID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("id = ? AND to_user_id = ?", id, toUserID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("FriendRequest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) Accept(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ?", id).
		Update("accepted", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.FriendRequest{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	// Pending requests where user is the recipient
	if err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND accepted = ?", userID, false).
		Preload("FromUser").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return requests, nil
}

func (r *friendRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND accepted = ?", userID, false).
		Preload("ToUser").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return requests, nil
}

// GetFriends returns the users connected to userID by an accepted request in
// either direction. Distinct collapses pairs accepted both ways into one row.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	if err := r.db.WithContext(ctx).
		Table("users").
		Distinct("users.*").
		Joins("JOIN friend_requests fr ON (users.id = fr.from_user_id OR users.id = fr.to_user_id)").
		Where("fr.accepted = ? AND (fr.from_user_id = ? OR fr.to_user_id = ?) AND users.id != ?",
			true, userID, userID, userID).
		Preload("Profile").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return users, nil
}

func (r *friendRepository) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("accepted = ? AND ((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?))",
			true, userID1, userID2, userID2, userID1).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
