package server

import (
	"retrospace/internal/models"

	"github.com/gofiber/fiber/v2"
)

type writeTestimonialRequest struct {
	Content string `json:"content"`
}

// WriteTestimonial posts a testimonial on another user's profile
func (s *Server) WriteTestimonial(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req writeTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	testimonial, err := s.testimonialService.Write(
		c.UserContext(), userID, c.Params("username"), req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// GetMyTestimonials lists testimonials on the caller's profile, hidden
// ones included so the owner can moderate them
func (s *Server) GetMyTestimonials(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	testimonials, err := s.testimonialService.ListForUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"testimonials": testimonials, "count": len(testimonials)})
}

// HideTestimonial hides a testimonial from the caller's profile page
func (s *Server) HideTestimonial(c *fiber.Ctx) error {
	return s.setTestimonialHidden(c, true)
}

// UnhideTestimonial restores a hidden testimonial
func (s *Server) UnhideTestimonial(c *fiber.Ctx) error {
	return s.setTestimonialHidden(c, false)
}

func (s *Server) setTestimonialHidden(c *fiber.Ctx, hidden bool) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	testimonialID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var testimonial *models.Testimonial
	if hidden {
		testimonial, err = s.testimonialService.Hide(c.UserContext(), userID, testimonialID)
	} else {
		testimonial, err = s.testimonialService.Unhide(c.UserContext(), userID, testimonialID)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(testimonial)
}

// DeleteTestimonial permanently removes a testimonial from the caller's
// profile
func (s *Server) DeleteTestimonial(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	testimonialID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.testimonialService.Delete(c.UserContext(), userID, testimonialID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Testimonial deleted"})
}
