package shop

import (
	"fmt"
	"slices"

	"github.com/five82/shopflow/internal/catalog"
	"github.com/five82/shopflow/internal/events"
	"github.com/five82/shopflow/internal/state"
)

// Toast texts for actions that carry no data.
const (
	msgSeeAllCategories = "See all categories clicked!"
	msgSeeAllProducts   = "See all products clicked!"
	msgBack             = "Back button clicked!"
	msgSearch           = "Search initiated!"
	msgTopBarFavorites  = "Favorites icon clicked!"
	msgTopBarCart       = "Cart icon clicked!"
)

// reducer turns the previous snapshot into the next one and optionally
// yields an event. A nil event means nothing is published.
type reducer func(state.ScreenState) (state.ScreenState, events.UserEvent)

// loaded installs a freshly loaded catalog.
func loaded(cat catalog.Catalog) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		s.Promotions = cat.Promotions
		s.Categories = cat.Categories
		s.Products = cat.Products
		s.IsLoading = false
		return recount(s), nil
	}
}

// loadFailed records a load error so the renderer can show a failure state.
func loadFailed(err error) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		s.Errors = append(slices.Clip(s.Errors), fmt.Sprintf("load catalog: %v", err))
		s.IsLoading = false
		return s, nil
	}
}

func toggleFavorite(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		i := indexOf(s.Products, id)
		if i < 0 {
			return s, nil
		}
		s.Products = slices.Clone(s.Products)
		p := &s.Products[i]
		p.IsFavorite = !p.IsFavorite
		verb := "removed from"
		if p.IsFavorite {
			verb = "added to"
		}
		ev := events.Toast(fmt.Sprintf("%s %s favorites", p.Name, verb))
		return recount(s), ev
	}
}

// toggleCart does not consult InStock; out-of-stock products can be added.
func toggleCart(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		i := indexOf(s.Products, id)
		if i < 0 {
			return s, nil
		}
		s.Products = slices.Clone(s.Products)
		p := &s.Products[i]
		p.IsInCart = !p.IsInCart
		verb := "removed from"
		if p.IsInCart {
			verb = "added to"
		}
		ev := events.Toast(fmt.Sprintf("%s %s cart", p.Name, verb))
		return recount(s), ev
	}
}

func productClicked(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		p, ok := s.Product(id)
		if !ok {
			return s, nil
		}
		return s, events.Toast("Product clicked: " + p.Name)
	}
}

func reviewClicked(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		p, ok := s.Product(id)
		if !ok {
			return s, nil
		}
		return s, events.Toast(fmt.Sprintf("Reviews for %s clicked!", p.Name))
	}
}

func categoryClicked(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		c, ok := s.Category(id)
		if !ok {
			return s, nil
		}
		return s, events.Toast("Category clicked: " + c.Name)
	}
}

func bannerClicked(id int64) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		promo, ok := s.Promotion(id)
		if !ok {
			return s, nil
		}
		return s, events.Toast("Banner clicked: " + promo.Title)
	}
}

// notify leaves state untouched and emits a fixed toast.
func notify(text string) reducer {
	return func(s state.ScreenState) (state.ScreenState, events.UserEvent) {
		return s, events.Toast(text)
	}
}

// recount rederives both counters from the product flags.
func recount(s state.ScreenState) state.ScreenState {
	s.FavoriteCount = s.CountFavorites()
	s.CartCount = s.CountInCart()
	return s
}

func indexOf(products []catalog.Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
