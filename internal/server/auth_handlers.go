package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /api/login. A successful credential exchange returns the
// bearer token alongside the user's public fields.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	result, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"token":    result.Token,
		"username": result.User.Username,
		"name":     result.User.Name,
	})
}
