package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFriends lists the caller's friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	friends, err := s.friendService.GetFriends(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"friends": friends, "count": len(friends)})
}

// GetPendingRequests lists friend requests awaiting the caller's decision
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	requests, err := s.friendService.GetPendingRequests(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests, "count": len(requests)})
}

// GetSentRequests lists pending requests the caller has sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	requests, err := s.friendService.GetSentRequests(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests, "count": len(requests)})
}

// SendFriendRequest creates a friend request to the user in the route
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	targetID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	request, err := s.friendService.SendFriendRequest(c.UserContext(), userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// AcceptFriendRequest accepts a request addressed to the caller
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, err := s.friendService.AcceptFriendRequest(c.UserContext(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// RejectFriendRequest declines and removes a pending request
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, err := s.friendService.RejectFriendRequest(c.UserContext(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Friend request rejected", "request": request})
}
