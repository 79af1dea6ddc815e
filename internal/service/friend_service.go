// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"retrospace/internal/models"
	"retrospace/internal/observability"
	"retrospace/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendFriendRequest sends a friend request to the target user. Only the
// ordered (from, to) pair is checked for duplicates; a pending request in
// the other direction does not block sending.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, targetUserID uint) (*models.FriendRequest, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.AreFriends(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, models.NewValidationError("You are already friends")
	}

	existing, err := s.friendRepo.GetPair(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Friend request already sent")
	}

	request := &models.FriendRequest{
		FromUserID: userID,
		ToUserID:   targetUserID,
	}
	if err := s.friendRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	observability.FriendRequestsTotal.WithLabelValues("sent").Inc()

	return request, nil
}

// GetPendingRequests returns pending friend requests addressed to the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.friendRepo.GetPendingRequests(ctx, userID)
}

// GetSentRequests returns pending friend requests sent by the user.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.friendRepo.GetSentRequests(ctx, userID)
}

// AcceptFriendRequest accepts a request addressed to userID. Requests
// addressed to anyone else are reported as not found rather than forbidden,
// so request ids cannot be probed. Accepting twice is harmless.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetByIDForRecipient(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}
	if request.Accepted {
		return request, nil
	}

	if err := s.friendRepo.Accept(ctx, requestID); err != nil {
		return nil, err
	}
	request.Accepted = true
	observability.FriendRequestsTotal.WithLabelValues("accepted").Inc()

	return request, nil
}

// RejectFriendRequest deletes a pending request addressed to userID.
func (s *FriendService) RejectFriendRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetByIDForRecipient(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}
	if request.Accepted {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.Delete(ctx, requestID); err != nil {
		return nil, err
	}
	observability.FriendRequestsTotal.WithLabelValues("rejected").Inc()

	return request, nil
}

// GetFriends returns the list of friends for the user.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// AreFriends reports whether an accepted request connects the two users.
func (s *FriendService) AreFriends(ctx context.Context, userID, otherUserID uint) (bool, error) {
	return s.friendRepo.AreFriends(ctx, userID, otherUserID)
}

// MutualFriends returns the users who are friends with both userID and
// otherUserID.
func (s *FriendService) MutualFriends(ctx context.Context, userID, otherUserID uint) ([]models.User, error) {
	mine, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.friendRepo.GetFriends(ctx, otherUserID)
	if err != nil {
		return nil, err
	}

	theirIDs := make(map[uint]struct{}, len(theirs))
	for _, u := range theirs {
		theirIDs[u.ID] = struct{}{}
	}

	mutual := make([]models.User, 0)
	for _, u := range mine {
		if _, ok := theirIDs[u.ID]; ok {
			mutual = append(mutual, u)
		}
	}
	return mutual, nil
}
