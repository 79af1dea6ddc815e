package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"retrospace/internal/models"
)

func TestTestimonialServiceWriteValidation(t *testing.T) {
	svc := NewTestimonialService(noopTestimonialRepo(), noopProfileRepo())

	_, err := svc.Write(context.Background(), 1, "someone", "   ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}

	_, err = svc.Write(context.Background(), 1, "someone", strings.Repeat("x", maxTestimonialLen+1))
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error for long content, got %#v", err)
	}
}

func TestTestimonialServiceWriteOwnProfile(t *testing.T) {
	profileRepo := noopProfileRepo()
	profileRepo.getByUsernameFn = func(context.Context, string) (*models.Profile, error) {
		return &models.Profile{ID: 9, UserID: 1}, nil
	}

	svc := NewTestimonialService(noopTestimonialRepo(), profileRepo)
	_, err := svc.Write(context.Background(), 1, "me", "so great")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestTestimonialServiceWrite(t *testing.T) {
	profileRepo := noopProfileRepo()
	profileRepo.getByUsernameFn = func(context.Context, string) (*models.Profile, error) {
		return &models.Profile{ID: 9, UserID: 2}, nil
	}
	testimonialRepo := noopTestimonialRepo()
	var created *models.Testimonial
	testimonialRepo.createFn = func(_ context.Context, tm *models.Testimonial) error {
		created = tm
		return nil
	}

	svc := NewTestimonialService(testimonialRepo, profileRepo)
	if _, err := svc.Write(context.Background(), 1, "friend", "  lovely page  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ProfileID != 9 || created.AuthorID != 1 || created.Content != "lovely page" {
		t.Fatalf("unexpected testimonial: %#v", created)
	}
}

func TestTestimonialServiceModerationForbiddenForNonOwner(t *testing.T) {
	testimonialRepo := noopTestimonialRepo()
	testimonialRepo.getByIDFn = func(_ context.Context, id uint) (*models.Testimonial, error) {
		return &models.Testimonial{ID: id, ProfileID: 9}, nil
	}
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		// caller's profile is 50, the testimonial sits on profile 9
		return &models.Profile{ID: 50, UserID: userID}, nil
	}

	svc := NewTestimonialService(testimonialRepo, profileRepo)

	var appErr *models.AppError
	if _, err := svc.Hide(context.Background(), 3, 7); !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("hide: expected forbidden, got %#v", err)
	}
	if _, err := svc.Unhide(context.Background(), 3, 7); !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("unhide: expected forbidden, got %#v", err)
	}
	if err := svc.Delete(context.Background(), 3, 7); !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("delete: expected forbidden, got %#v", err)
	}
}

func TestTestimonialServiceHideUnhide(t *testing.T) {
	testimonialRepo := noopTestimonialRepo()
	hidden := false
	testimonialRepo.getByIDFn = func(_ context.Context, id uint) (*models.Testimonial, error) {
		return &models.Testimonial{ID: id, ProfileID: 50, IsHidden: hidden}, nil
	}
	testimonialRepo.setHiddenFn = func(_ context.Context, _ uint, h bool) error {
		hidden = h
		return nil
	}
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 50, UserID: userID}, nil
	}

	svc := NewTestimonialService(testimonialRepo, profileRepo)

	got, err := svc.Hide(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsHidden || !hidden {
		t.Fatal("expected testimonial hidden")
	}

	got, err = svc.Unhide(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsHidden || hidden {
		t.Fatal("expected testimonial visible again")
	}
}
