package repositories

import (
	"context"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"gorm.io/gorm"
)

// BlogStore reads published editorial content.
type BlogStore interface {
	GetBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetBlogCategories(ctx context.Context) ([]models.BlogCategory, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogStore {
	return &blogRepository{db: db}
}

func (r *blogRepository) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).
		Where("status = ?", models.BlogStatusPublished).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.BlogStatusPublished).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetBlogCategories(ctx context.Context) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
