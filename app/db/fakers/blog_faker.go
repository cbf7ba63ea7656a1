package fakers

import (
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
)

// BlogPostFakers returns the starter editorial posts. categoryIDs maps
// blog category slugs to their IDs.
func BlogPostFakers(categoryIDs map[string]string) []*models.BlogPost {
	publishedAt := func(daysAgo int) *time.Time {
		t := time.Now().AddDate(0, 0, -daysAgo)
		return &t
	}
	categoryID := func(slug string) *string {
		if id, ok := categoryIDs[slug]; ok {
			return &id
		}
		return nil
	}

	return []*models.BlogPost{
		{
			Title:         "5 Essential Car Maintenance Tips for Kenyan Roads",
			Slug:          "5-essential-car-maintenance-tips-kenyan-roads",
			CategoryID:    categoryID("maintenance-tips"),
			Content:       "<p>Kenyan roads demand more from your vehicle. Check your suspension regularly, replace air filters more often than the service book suggests, and inspect brake pads every 5,000 km.</p>",
			Excerpt:       "Keep your vehicle running smoothly with these essential maintenance tips tailored for local driving conditions.",
			FeaturedImage: "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3",
			Status:        models.BlogStatusPublished,
			PublishedAt:   publishedAt(1),
		},
		{
			Title:         "How to Choose the Right Brake Pads for Your Vehicle",
			Slug:          "how-to-choose-right-brake-pads",
			CategoryID:    categoryID("product-guides"),
			Content:       "<p>Brake pads come in organic, semi-metallic and ceramic compounds. Match the pad to your driving style and always replace in axle pairs.</p>",
			Excerpt:       "A practical guide to selecting brake pads that match your vehicle and driving conditions.",
			FeaturedImage: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64",
			Status:        models.BlogStatusPublished,
			PublishedAt:   publishedAt(3),
		},
	}
}
