package service

import (
	"context"
	"strings"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// AuthPolicy names the authorization requirement of a blog operation. Every
// mutating operation declares its policy explicitly instead of implying it.
type AuthPolicy int

const (
	// PolicyPublic requires no identity.
	PolicyPublic AuthPolicy = iota
	// PolicyAuthenticated requires a resolved identity.
	PolicyAuthenticated
	// PolicyOwnerOnly requires the identity to match the blog's creator.
	PolicyOwnerOnly
)

// Per-operation policies. UpdateLikes is deliberately public: a like count is
// a collaborative counter, not owner-scoped content. Create and Delete stay
// identity-bound.
const (
	createPolicy      = PolicyAuthenticated
	updateLikesPolicy = PolicyPublic
	deletePolicy      = PolicyOwnerOnly
)

// BlogService implements CRUD on blogs with per-operation authorization.
type BlogService struct {
	blogs repository.BlogRepository
}

// CreateBlogInput carries the fields of a blog creation request. Likes is a
// pointer so an absent value (default 0) can be told apart from an explicit
// one.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

func NewBlogService(blogs repository.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// authorize checks an identity against the policy of an operation. ownerID is
// only consulted for PolicyOwnerOnly.
func authorize(policy AuthPolicy, identity *auth.Identity, ownerID uint) error {
	switch policy {
	case PolicyPublic:
		return nil
	case PolicyAuthenticated:
		if identity == nil {
			return models.NewUnauthorizedError("token missing")
		}
		return nil
	default: // PolicyOwnerOnly
		if identity == nil {
			return models.NewUnauthorizedError("token missing")
		}
		if identity.UserID != ownerID {
			return models.NewForbiddenError("not the creator")
		}
		return nil
	}
}

// List returns all blogs with their owners preloaded. No authentication
// required.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.List(ctx)
}

// Create validates the payload and persists a blog owned by the caller.
func (s *BlogService) Create(ctx context.Context, identity *auth.Identity, in CreateBlogInput) (*models.Blog, error) {
	if err := authorize(createPolicy, identity, 0); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("title is required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, models.NewValidationError("url is required")
	}

	likes := 0
	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, models.NewValidationError("likes must be a non-negative integer")
		}
		likes = *in.Likes
	}

	blog := &models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likes,
		UserID: identity.UserID,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	// Reload so the response carries the denormalized owner.
	return s.blogs.GetByID(ctx, blog.ID)
}

// UpdateLikes replaces the likes count of a blog. The value must be present
// and non-negative; it is stored exactly as submitted.
func (s *BlogService) UpdateLikes(ctx context.Context, identity *auth.Identity, id uint, likes *int) (*models.Blog, error) {
	if err := authorize(updateLikesPolicy, identity, 0); err != nil {
		return nil, err
	}
	if likes == nil {
		return nil, models.NewValidationError("likes is required")
	}
	if *likes < 0 {
		return nil, models.NewValidationError("likes must be a non-negative integer")
	}
	return s.blogs.UpdateLikes(ctx, id, *likes)
}

// Delete removes a blog. Only the creator may delete it; unknown IDs are
// reported before the ownership check.
func (s *BlogService) Delete(ctx context.Context, identity *auth.Identity, id uint) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(deletePolicy, identity, blog.UserID); err != nil {
		return err
	}
	return s.blogs.Delete(ctx, id)
}
