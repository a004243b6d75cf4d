package server

import (
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseBlogID reads the :id route parameter. Anything that is not a positive
// integer cannot name a stored blog, so it maps to not-found.
func parseBlogID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, models.NewNotFoundError("blog", c.Params("id"))
	}
	return uint(id), nil
}

// GetBlogs handles GET /api/blogs. No authentication required.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	out := make([]models.PublicBlog, 0, len(blogs))
	for i := range blogs {
		out = append(out, blogs[i].Public())
	}
	return c.JSON(out)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	blog, err := s.blogService.Create(c.UserContext(), middleware.CurrentIdentity(c), service.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog.Public())
}

// UpdateBlogLikes handles PUT /api/blogs/:id
func (s *Server) UpdateBlogLikes(c *fiber.Ctx) error {
	id, err := parseBlogID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Likes *int `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	blog, err := s.blogService.UpdateLikes(c.UserContext(), middleware.CurrentIdentity(c), id, req.Likes)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(blog.Public())
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := parseBlogID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.blogService.Delete(c.UserContext(), middleware.CurrentIdentity(c), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
