package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedBlog replaces the in-memory blog content.
func (s *MemoryStore) SeedBlog(categories []models.BlogCategory, posts []models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogCats = categories
	s.blogPosts = posts
}

// SeedSampleBlog loads the built-in editorial content used when the
// store runs without a database.
func (s *MemoryStore) SeedSampleBlog() {
	now := time.Now()
	maintenance := models.BlogCategory{
		ID:          uuid.New().String(),
		Name:        "Maintenance Tips",
		Slug:        "maintenance-tips",
		Description: "Expert tips on vehicle maintenance",
		CreatedAt:   now,
	}
	guides := models.BlogCategory{
		ID:          uuid.New().String(),
		Name:        "Product Guides",
		Slug:        "product-guides",
		Description: "Comprehensive guides for auto parts",
		CreatedAt:   now,
	}
	news := models.BlogCategory{
		ID:          uuid.New().String(),
		Name:        "Industry News",
		Slug:        "industry-news",
		Description: "Latest news from automotive industry",
		CreatedAt:   now,
	}

	published := now.Add(-24 * time.Hour)
	older := now.Add(-72 * time.Hour)
	posts := []models.BlogPost{
		{
			ID:            uuid.New().String(),
			Title:         "5 Essential Car Maintenance Tips for Kenyan Roads",
			Slug:          "5-essential-car-maintenance-tips-kenyan-roads",
			CategoryID:    &maintenance.ID,
			Content:       "<p>Kenyan roads demand more from your vehicle. Check your suspension regularly, replace air filters more often than the service book suggests, and inspect brake pads every 5,000 km.</p>",
			Excerpt:       "Keep your vehicle running smoothly with these essential maintenance tips tailored for local driving conditions.",
			FeaturedImage: "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3",
			Status:        models.BlogStatusPublished,
			PublishedAt:   &published,
			CreatedAt:     published,
			UpdatedAt:     published,
		},
		{
			ID:            uuid.New().String(),
			Title:         "How to Choose the Right Brake Pads for Your Vehicle",
			Slug:          "how-to-choose-right-brake-pads",
			CategoryID:    &guides.ID,
			Content:       "<p>Brake pads come in organic, semi-metallic and ceramic compounds. Match the pad to your driving style and always replace in axle pairs.</p>",
			Excerpt:       "A practical guide to selecting brake pads that match your vehicle and driving conditions.",
			FeaturedImage: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64",
			Status:        models.BlogStatusPublished,
			PublishedAt:   &older,
			CreatedAt:     older,
			UpdatedAt:     older,
		},
	}

	s.SeedBlog([]models.BlogCategory{maintenance, guides, news}, posts)
}

func (s *MemoryStore) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, post := range s.blogPosts {
		if post.Status == models.BlogStatusPublished {
			out = append(out, post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].PublishedAt, out[j].PublishedAt
		if pi == nil || pj == nil {
			return pj == nil && pi != nil
		}
		return pi.After(*pj)
	})
	return out, nil
}

func (s *MemoryStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.blogPosts {
		if post.Slug == slug && post.Status == models.BlogStatusPublished {
			found := post
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) GetBlogCategories(ctx context.Context) ([]models.BlogCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogCategory, len(s.blogCats))
	copy(out, s.blogCats)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
