package state

import "github.com/five82/shopflow/internal/catalog"

// ScreenState is the complete observable state of the browse screen.
// FavoriteCount and CartCount are derived from Products and must match
// CountFavorites and CountInCart after every update.
type ScreenState struct {
	Promotions    []catalog.Promotion
	Categories    []catalog.Category
	Products      []catalog.Product
	FavoriteCount int
	CartCount     int
	IsLoading     bool
	Errors        []string
}

// Initial returns the state a screen session starts in, before the catalog
// has been loaded.
func Initial() ScreenState {
	return ScreenState{IsLoading: true}
}

// Clone returns a copy whose slices do not alias s.
func (s ScreenState) Clone() ScreenState {
	dup := s
	dup.Promotions = cloneSlice(s.Promotions)
	dup.Categories = cloneSlice(s.Categories)
	dup.Products = cloneSlice(s.Products)
	dup.Errors = cloneSlice(s.Errors)
	return dup
}

// CountFavorites counts products flagged as favorite.
func (s ScreenState) CountFavorites() int {
	n := 0
	for _, p := range s.Products {
		if p.IsFavorite {
			n++
		}
	}
	return n
}

// CountInCart counts products flagged as in the cart.
func (s ScreenState) CountInCart() int {
	n := 0
	for _, p := range s.Products {
		if p.IsInCart {
			n++
		}
	}
	return n
}

// Consistent reports whether the stored counts match the product flags.
func (s ScreenState) Consistent() bool {
	return s.FavoriteCount == s.CountFavorites() && s.CartCount == s.CountInCart()
}

// HasErrors reports whether a load failure was recorded.
func (s ScreenState) HasErrors() bool {
	return len(s.Errors) > 0
}

// Product looks up a product by id.
func (s ScreenState) Product(id int64) (catalog.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Category looks up a category by id.
func (s ScreenState) Category(id int64) (catalog.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Category{}, false
}

// Promotion looks up a promotion by id.
func (s ScreenState) Promotion(id int64) (catalog.Promotion, bool) {
	for _, p := range s.Promotions {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Promotion{}, false
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
