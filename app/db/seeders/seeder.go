package seeders

import (
	"log"

	"github.com/JBlizzard-sketch/Autoscraper/app/db/fakers"
	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const productsPerSubcategory = 5

var brandNames = []string{"Bosch", "Denso", "NGK", "KYB", "Gates"}

var categorySeed = map[string][]string{
	"Braking":    {"Brake Pads", "Brake Discs"},
	"Filtration": {"Oil Filters", "Air Filters"},
	"Suspension": {"Shock Absorbers"},
	"Engine":     {"Timing Components"},
}

// Seed fills an empty database with reference brands, categories and
// faker-generated products. Existing rows are matched on slug so the
// command is safe to run twice.
func Seed(db *gorm.DB) error {
	brands := make([]models.Brand, 0, len(brandNames))
	for _, name := range brandNames {
		brand := models.Brand{Name: name, Slug: slug.Make(name)}
		if err := db.FirstOrCreate(&brand, models.Brand{Slug: brand.Slug}).Error; err != nil {
			return err
		}
		brands = append(brands, brand)
	}

	i := 0
	for categoryName, subNames := range categorySeed {
		category := models.Category{Name: categoryName, Slug: slug.Make(categoryName)}
		if err := db.FirstOrCreate(&category, models.Category{Slug: category.Slug}).Error; err != nil {
			return err
		}

		for _, subName := range subNames {
			sub := models.Subcategory{Name: subName, Slug: slug.Make(subName), CategoryID: category.ID}
			if err := db.FirstOrCreate(&sub, models.Subcategory{Slug: sub.Slug}).Error; err != nil {
				return err
			}

			for j := 0; j < productsPerSubcategory; j++ {
				brand := brands[i%len(brands)]
				i++
				product := fakers.ProductFaker(&category, &sub, &brand)
				if err := db.Create(product).Error; err != nil {
					return err
				}
			}
		}
	}

	if err := seedBlog(db); err != nil {
		return err
	}

	log.Printf("Seeded %d products across %d categories", i, len(categorySeed))
	return nil
}

var blogCategorySeed = []models.BlogCategory{
	{Name: "Maintenance Tips", Slug: "maintenance-tips", Description: "Expert tips on vehicle maintenance"},
	{Name: "Product Guides", Slug: "product-guides", Description: "Comprehensive guides for auto parts"},
	{Name: "Industry News", Slug: "industry-news", Description: "Latest news from automotive industry"},
}

func seedBlog(db *gorm.DB) error {
	bySlug := make(map[string]string, len(blogCategorySeed))
	for _, seed := range blogCategorySeed {
		category := seed
		if err := db.FirstOrCreate(&category, models.BlogCategory{Slug: category.Slug}).Error; err != nil {
			return err
		}
		bySlug[category.Slug] = category.ID
	}

	for _, post := range fakers.BlogPostFakers(bySlug) {
		if err := db.FirstOrCreate(post, models.BlogPost{Slug: post.Slug}).Error; err != nil {
			return err
		}
	}
	return nil
}
