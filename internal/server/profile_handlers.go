package server

import (
	"retrospace/internal/middleware"
	"retrospace/internal/models"
	"retrospace/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the caller's own profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	profile, err := s.profileService.Me(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile applies a partial update to the caller's profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpdateProfile(c.UserContext(), userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// ViewProfile renders a profile page for the viewer. Anonymous viewers
// see public profiles only; authenticated views are counted and logged.
func (s *Server) ViewProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	// AuthOptional sets this only for valid tokens
	viewerID, _ := c.Locals(middleware.LocalsUserID).(uint)

	view, err := s.profileService.View(c.UserContext(), viewerID, username)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// GetDashboard returns the owner's landing page payload
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	dashboard, err := s.profileService.GetDashboard(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dashboard)
}

// GetVisitors returns the caller's recent profile visitors
func (s *Server) GetVisitors(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	// zero falls through to the repository's 50-row clamp
	limit := c.QueryInt("limit")
	visitors, err := s.profileService.RecentVisitors(c.UserContext(), userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"visitors": visitors, "count": len(visitors)})
}
