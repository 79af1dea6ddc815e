package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchUsers finds users by username or interests via ?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	limit, _ := parsePagination(c)

	results, err := s.searchService.Search(c.UserContext(), c.Query("q"), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"results": results, "count": len(results)})
}
