package server

import (
	"retrospace/internal/models"
	"retrospace/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyTopFives lists the caller's top five lists
func (s *Server) GetMyTopFives(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	topFives, err := s.topFiveService.ListForUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"top_fives": topFives, "count": len(topFives)})
}

// CreateTopFive adds a top five list to the caller's profile
func (s *Server) CreateTopFive(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var input service.TopFiveInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	topFive, err := s.topFiveService.Create(c.UserContext(), userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(topFive)
}

// UpdateTopFive edits one of the caller's lists
func (s *Server) UpdateTopFive(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	topFiveID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.TopFiveInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	topFive, err := s.topFiveService.Update(c.UserContext(), userID, topFiveID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(topFive)
}

// DeleteTopFive removes one of the caller's lists
func (s *Server) DeleteTopFive(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	topFiveID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.topFiveService.Delete(c.UserContext(), userID, topFiveID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Top five deleted"})
}
