package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCatalog is returned when a catalog file fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrDuplicateID is returned when two entries of the same kind share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNoPath is returned by FileSource when no file is configured.
	ErrNoPath = errors.New("catalog path is empty")
)

// Source provides the seed lists for a browse session. Load is called once.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) (Catalog, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context) (Catalog, error) {
	return f(ctx)
}

// Static returns a Source that always yields a copy of c.
func Static(c Catalog) Source {
	return SourceFunc(func(ctx context.Context) (Catalog, error) {
		if err := ctx.Err(); err != nil {
			return Catalog{}, err
		}
		return c.Clone(), nil
	})
}

// Clone returns a copy whose slices do not alias c.
func (c Catalog) Clone() Catalog {
	return Catalog{
		Promotions: append([]Promotion(nil), c.Promotions...),
		Categories: append([]Category(nil), c.Categories...),
		Products:   append([]Product(nil), c.Products...),
	}
}

// checkUnique verifies ids are unique within each list.
func (c Catalog) checkUnique() error {
	seen := make(map[int64]struct{}, len(c.Products))
	for _, p := range c.Products {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	clear(seen)
	for _, cat := range c.Categories {
		if _, ok := seen[cat.ID]; ok {
			return fmt.Errorf("category %d: %w", cat.ID, ErrDuplicateID)
		}
		seen[cat.ID] = struct{}{}
	}
	clear(seen)
	for _, promo := range c.Promotions {
		if _, ok := seen[promo.ID]; ok {
			return fmt.Errorf("promotion %d: %w", promo.ID, ErrDuplicateID)
		}
		seen[promo.ID] = struct{}{}
	}
	return nil
}
