package fakers

import (
	"fmt"
	"math/rand"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var partNames = []string{
	"Brake Pad Set",
	"Oil Filter",
	"Air Filter",
	"Shock Absorber",
	"Timing Belt Kit",
	"Radiator",
	"Alternator",
	"Clutch Kit",
	"Fuel Pump",
	"Wheel Bearing",
	"Control Arm",
	"Spark Plug Set",
}

var vehicleMakes = map[string][]string{
	"Toyota":     {"Corolla", "Hilux", "Land Cruiser", "Prado"},
	"Nissan":     {"X-Trail", "Navara", "Note"},
	"Subaru":     {"Forester", "Outback", "Impreza"},
	"Mitsubishi": {"Pajero", "Outlander", "L200"},
	"Mazda":      {"Demio", "CX-5", "Axela"},
}

var yearRanges = []string{"2005-2010", "2008-2013", "2012-2018", "2015-2022"}

func ProductFaker(category *models.Category, subcategory *models.Subcategory, brand *models.Brand) *models.Product {
	vehicleMake := randomKey(vehicleMakes)
	vehicleModel := vehicleMakes[vehicleMake][rand.Intn(len(vehicleMakes[vehicleMake]))]
	part := partNames[rand.Intn(len(partNames))]

	name := fmt.Sprintf("%s %s %s", vehicleMake, vehicleModel, part)
	suffix := rand.Intn(900000) + 100000

	product := &models.Product{
		Name:           name,
		Slug:           slug.Make(fmt.Sprintf("%s-%d", name, suffix)),
		Sku:            fmt.Sprintf("SKU-%d", suffix),
		Price:          fakePrice(),
		VehicleMake:    vehicleMake,
		VehicleModel:   vehicleModel,
		YearRange:      yearRanges[rand.Intn(len(yearRanges))],
		OEMPartNumber:  fmt.Sprintf("OEM-%d", rand.Intn(90000)+10000),
		Description:    faker.Paragraph(),
		StockQuantity:  rand.Intn(20) + 1,
		LeadTimeDays:   rand.Intn(14),
		WarrantyMonths: []int{0, 3, 6, 12}[rand.Intn(4)],
		Available:      true,
	}

	if category != nil {
		product.CategoryID = &category.ID
	}
	if subcategory != nil {
		product.SubcategoryID = &subcategory.ID
	}
	if brand != nil {
		product.BrandID = &brand.ID
	}

	return product
}

// fakePrice returns a plausible spare-part price between KSh 500 and
// KSh 85,000, rounded to two decimal places.
func fakePrice() decimal.Decimal {
	return decimal.NewFromFloat(500 + rand.Float64()*84500).Round(2)
}

func randomKey(m map[string][]string) string {
	i := rand.Intn(len(m))
	for k := range m {
		if i == 0 {
			return k
		}
		i--
	}
	return ""
}
