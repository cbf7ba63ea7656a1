package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBlogFixture(store *repositories.MemoryStore) {
	now := time.Now()
	older := now.Add(-48 * time.Hour)
	oldest := now.Add(-96 * time.Hour)

	categories := []models.BlogCategory{
		{ID: "cat-guides", Name: "Product Guides", Slug: "product-guides"},
		{ID: "cat-news", Name: "Industry News", Slug: "industry-news"},
		{ID: "cat-maint", Name: "Maintenance Tips", Slug: "maintenance-tips"},
	}
	posts := []models.BlogPost{
		{
			ID: "post-old", Title: "Choosing Brake Pads", Slug: "choosing-brake-pads",
			Content: "<p>Pads.</p>", Status: models.BlogStatusPublished, PublishedAt: &oldest,
		},
		{
			ID: "post-draft", Title: "Unfinished Post", Slug: "unfinished-post",
			Content: "<p>Draft.</p>", Status: "draft",
		},
		{
			ID: "post-new", Title: "Maintenance Tips", Slug: "maintenance-tips-post",
			Content: "<p>Tips.</p>", Status: models.BlogStatusPublished, PublishedAt: &older,
		},
	}
	store.SeedBlog(categories, posts)
}

func TestGetBlogPostsReturnsPublishedNewestFirst(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedBlogFixture(store)

	posts, err := store.GetBlogPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-new", posts[0].ID)
	assert.Equal(t, "post-old", posts[1].ID)
	for _, post := range posts {
		assert.Equal(t, models.BlogStatusPublished, post.Status)
	}
}

func TestGetBlogPostBySlug(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedBlogFixture(store)
	ctx := context.Background()

	post, err := store.GetBlogPostBySlug(ctx, "choosing-brake-pads")
	require.NoError(t, err)
	assert.Equal(t, "Choosing Brake Pads", post.Title)

	_, err = store.GetBlogPostBySlug(ctx, "no-such-post")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Drafts stay invisible even when the slug matches.
	_, err = store.GetBlogPostBySlug(ctx, "unfinished-post")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetBlogCategoriesSortedByName(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedBlogFixture(store)

	categories, err := store.GetBlogCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Industry News", categories[0].Name)
	assert.Equal(t, "Maintenance Tips", categories[1].Name)
	assert.Equal(t, "Product Guides", categories[2].Name)
}

func TestSeedSampleBlog(t *testing.T) {
	store := repositories.NewMemoryStore()
	store.SeedSampleBlog()
	ctx := context.Background()

	posts, err := store.GetBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "5-essential-car-maintenance-tips-kenyan-roads", posts[0].Slug)

	categories, err := store.GetBlogCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}
