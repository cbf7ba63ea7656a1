package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const BlogStatusPublished = "published"

type BlogCategory struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (bc *BlogCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if bc.ID == "" {
		bc.ID = uuid.New().String()
	}
	return
}

// BlogPost is editorial content served read-only by the storefront.
// Only rows with status "published" are ever exposed.
type BlogPost struct {
	ID            string     `gorm:"size:36;primaryKey" json:"id"`
	Title         string     `gorm:"size:500;not null" json:"title"`
	Slug          string     `gorm:"size:500;not null;uniqueIndex" json:"slug"`
	CategoryID    *string    `gorm:"size:36;index" json:"category_id"`
	AuthorID      *string    `gorm:"size:36" json:"author_id"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `gorm:"type:text" json:"excerpt"`
	FeaturedImage string     `gorm:"type:text" json:"featured_image"`
	Status        string     `gorm:"size:50;default:draft" json:"status"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (bp *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if bp.ID == "" {
		bp.ID = uuid.New().String()
	}
	return
}
