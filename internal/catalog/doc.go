// Package catalog defines the shop's product, category and promotion data
// and the sources that seed a browse session.
//
// Two sources ship with the package:
//
//   - Sample: the built-in demo data (3 promotions, 5 categories, 6 products)
//   - FileSource: a TOML document validated before use
//
// A catalog file looks like:
//
//	[[promotion]]
//	id = 1
//	title = "GET 20% OFF"
//	date_range = "12-16 October"
//	background_color = "#fde2e4"
//
//	[[category]]
//	id = 1
//	name = "Cleansers"
//
//	[[product]]
//	id = 1
//	name = "Clarity Cleanser"
//	list_price = "444.00"
//	sale_price = "355.20"
//	category = "Cleansers"
//	rating = 5.0
//	review_count = 249
//	favorite = true
//	tag = "Best Seller"
//
// Prices are strings so they decode exactly into decimal values. in_stock
// defaults to true when omitted. Product.Category is a plain name and is not
// checked against the category list.
package catalog
