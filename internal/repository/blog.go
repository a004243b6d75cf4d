package repository

import (
	"context"
	"errors"

	"bloglist/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) error
	UpdateLikes(ctx context.Context, id uint, likes int) (*models.Blog, error)
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Preload("User").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("blog", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

// Create persists the blog. The ID is generated by the store; callers must
// not pre-assign it.
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateLikes replaces the likes count of the blog and returns the updated
// record. Unknown IDs yield a not-found error.
func (r *blogRepository) UpdateLikes(ctx context.Context, id uint, likes int) (*models.Blog, error) {
	res := r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).Update("likes", likes)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("blog", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the blog. Deleting an ID that is already gone reports
// not-found rather than failing, so repeated deletes stay idempotent.
func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Blog{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("blog", id)
	}
	return nil
}
