package service

import (
	"context"
	"errors"
	"testing"

	"retrospace/internal/models"
)

func TestFriendServiceSendFriendRequestSelf(t *testing.T) {
	svc := NewFriendService(noopFriendRepo(), noopUserRepo())
	_, err := svc.SendFriendRequest(context.Background(), 3, 3)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestFriendServiceSendDuplicateOrderedPair(t *testing.T) {
	repo := noopFriendRepo()
	repo.getPairFn = func(_ context.Context, from, to uint) (*models.FriendRequest, error) {
		if from == 1 && to == 2 {
			return &models.FriendRequest{ID: 7, FromUserID: 1, ToUserID: 2}, nil
		}
		return nil, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.SendFriendRequest(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestFriendServiceReverseDirectionDoesNotBlock(t *testing.T) {
	repo := noopFriendRepo()
	// A pending request 2 -> 1 exists; only the ordered pair 1 -> 2 counts.
	repo.getPairFn = func(_ context.Context, from, to uint) (*models.FriendRequest, error) {
		if from == 2 && to == 1 {
			return &models.FriendRequest{ID: 9, FromUserID: 2, ToUserID: 1}, nil
		}
		return nil, nil
	}
	created := false
	repo.createFn = func(_ context.Context, r *models.FriendRequest) error {
		created = true
		return nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	if _, err := svc.SendFriendRequest(context.Background(), 1, 2); err != nil {
		t.Fatalf("expected reverse-direction send to succeed, got %v", err)
	}
	if !created {
		t.Fatal("expected request to be created")
	}
}

func TestFriendServiceSendAlreadyFriends(t *testing.T) {
	repo := noopFriendRepo()
	repo.areFriendsFn = func(context.Context, uint, uint) (bool, error) { return true, nil }

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.SendFriendRequest(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestFriendServiceAcceptScopedToRecipient(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDForRecipientFn = func(_ context.Context, id, toUserID uint) (*models.FriendRequest, error) {
		if toUserID != 11 {
			return nil, models.NewNotFoundError("FriendRequest", id)
		}
		return &models.FriendRequest{ID: id, FromUserID: 10, ToUserID: 11}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())

	// Wrong recipient surfaces as not found, never forbidden
	_, err := svc.AcceptFriendRequest(context.Background(), 12, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}

	got, err := svc.AcceptFriendRequest(context.Background(), 11, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Accepted {
		t.Fatal("expected request to be marked accepted")
	}
}

func TestFriendServiceAcceptIdempotent(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDForRecipientFn = func(_ context.Context, id, _ uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{ID: id, Accepted: true}, nil
	}
	repo.acceptFn = func(context.Context, uint) error {
		t.Fatal("already-accepted request should not be re-accepted")
		return nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	if _, err := svc.AcceptFriendRequest(context.Background(), 11, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFriendServiceRejectAcceptedRequest(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDForRecipientFn = func(_ context.Context, id, _ uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{ID: id, Accepted: true}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.RejectFriendRequest(context.Background(), 11, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestFriendServiceMutualFriends(t *testing.T) {
	repo := noopFriendRepo()
	repo.getFriendsFn = func(_ context.Context, userID uint) ([]models.User, error) {
		switch userID {
		case 1:
			return []models.User{{ID: 3}, {ID: 4}, {ID: 5}}, nil
		case 2:
			return []models.User{{ID: 4}, {ID: 5}, {ID: 6}}, nil
		}
		return nil, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	mutual, err := svc.MutualFriends(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mutual) != 2 || mutual[0].ID != 4 || mutual[1].ID != 5 {
		t.Fatalf("expected users 4 and 5, got %#v", mutual)
	}
}
