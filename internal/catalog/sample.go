package catalog

import "github.com/shopspring/decimal"

// Sample returns the built-in demo catalog used when no catalog file is set.
func Sample() Source {
	return Static(sampleCatalog())
}

func sampleCatalog() Catalog {
	return Catalog{
		Promotions: []Promotion{
			{ID: 1, Title: "GET 20% OFF", Subtitle: "Get 20% off", DateRange: "12-16 October", ImageRef: "product_image"},
			{ID: 2, Title: "SALE ENDS SOON", Subtitle: "Limited time offer!", DateRange: "Ends 20 Oct", ImageRef: "categorysample"},
			{ID: 3, Title: "FREE SHIPPING", Subtitle: "On orders over Rs.200", DateRange: "This Week Only", ImageRef: "product_image"},
		},
		Categories: []Category{
			{ID: 1, Name: "Cleansers", ImageRef: "categorysample"},
			{ID: 2, Name: "Serums", ImageRef: "categorysample"},
			{ID: 3, Name: "Moisturizers", ImageRef: "product_image"},
			{ID: 4, Name: "Sunscreens", ImageRef: "categorysample"},
			{ID: 5, Name: "Masks", ImageRef: "product_image"},
		},
		Products: []Product{
			{
				ID: 1, Name: "Clarity Cleanser",
				Description: "Gentle foam cleanser for all skin types. Removes impurities without drying.",
				ListPrice:   price("444.00"), SalePrice: price("355.20"),
				ImageRef: "product_image", Category: "Cleansers",
				Rating: 5, ReviewCount: 249, InStock: true, IsFavorite: true,
				Tag: "Best Seller",
			},
			{
				ID: 2, Name: "Radiance Serum",
				Description: "Vitamin C serum for a brighter, even complexion. Fades dark spots.",
				ListPrice:   price("644.00"), SalePrice: price("400.00"),
				ImageRef: "product_image", Category: "Serums",
				Rating: 4, ReviewCount: 123, InStock: true, IsInCart: true,
				Tag: "New",
			},
			{
				ID: 3, Name: "HydroBoost Gel",
				Description: "Lightweight gel moisturizer for oily to combination skin. Hydrates instantly.",
				ListPrice:   price("744.00"), SalePrice: price("499.00"),
				ImageRef: "product_image", Category: "Moisturizers",
				Rating: 3.5, ReviewCount: 45, IsInCart: true,
			},
			{
				ID: 4, Name: "SunGuard SPF 50",
				Description: "Broad-spectrum sunscreen, non-greasy formula. Protects against UVA/UVB.",
				ListPrice:   price("344.00"), SalePrice: price("200.00"),
				ImageRef: "product_image", Category: "Sunscreens",
				Rating: 4.1, ReviewCount: 450, InStock: true, IsFavorite: true,
			},
			{
				ID: 5, Name: "Detox Clay Mask",
				Description: "Purifying clay mask with activated charcoal. Minimizes pores.",
				ListPrice:   price("244.00"), SalePrice: price("199.00"),
				ImageRef: "product_image", Category: "Masks",
				Rating: 5, ReviewCount: 899, InStock: true, IsFavorite: true, IsInCart: true,
			},
			{
				ID: 6, Name: "Night Cream",
				Description: "Rich night cream with retinol and peptides. Reduces fine lines.",
				ListPrice:   price("944.00"), SalePrice: price("699.00"),
				ImageRef: "product_image", Category: "Moisturizers",
				Rating: 4.5, ReviewCount: 654,
			},
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
