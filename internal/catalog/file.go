package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// FileSource loads a catalog from a TOML file with [[promotion]],
// [[category]] and [[product]] tables.
type FileSource struct {
	Path string
}

type fileCatalog struct {
	Promotions []promotionRecord `toml:"promotion" validate:"dive"`
	Categories []categoryRecord  `toml:"category" validate:"dive"`
	Products   []productRecord   `toml:"product" validate:"dive"`
}

type promotionRecord struct {
	ID              int64  `toml:"id" validate:"gt=0"`
	Title           string `toml:"title" validate:"required"`
	Subtitle        string `toml:"subtitle"`
	DateRange       string `toml:"date_range"`
	Image           string `toml:"image"`
	BackgroundColor string `toml:"background_color" validate:"omitempty,hexcolor"`
}

type categoryRecord struct {
	ID    int64  `toml:"id" validate:"gt=0"`
	Name  string `toml:"name" validate:"required"`
	Image string `toml:"image"`
}

type productRecord struct {
	ID          int64   `toml:"id" validate:"gt=0"`
	Name        string  `toml:"name" validate:"required"`
	Description string  `toml:"description"`
	ListPrice   string  `toml:"list_price" validate:"required,numeric"`
	SalePrice   string  `toml:"sale_price" validate:"required,numeric"`
	Image       string  `toml:"image"`
	Category    string  `toml:"category"`
	Rating      float64 `toml:"rating" validate:"gte=0,lte=5"`
	ReviewCount int     `toml:"review_count" validate:"gte=0"`
	InStock     *bool   `toml:"in_stock"`
	Favorite    bool    `toml:"favorite"`
	InCart      bool    `toml:"in_cart"`
	Tag         string  `toml:"tag"`
}

var validate = validator.New()

// Load implements Source.
func (s FileSource) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return Catalog{}, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML catalog document.
func Parse(data []byte) (Catalog, error) {
	var raw fileCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate.Struct(raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on rule: %s", fe.Namespace(), fe.Tag()))
			}
			return Catalog{}, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(msgs, "; "))
		}
		return Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}

	cat := Catalog{
		Promotions: make([]Promotion, 0, len(raw.Promotions)),
		Categories: make([]Category, 0, len(raw.Categories)),
		Products:   make([]Product, 0, len(raw.Products)),
	}
	for _, r := range raw.Promotions {
		cat.Promotions = append(cat.Promotions, Promotion{
			ID:              r.ID,
			Title:           strings.TrimSpace(r.Title),
			Subtitle:        strings.TrimSpace(r.Subtitle),
			DateRange:       strings.TrimSpace(r.DateRange),
			ImageRef:        strings.TrimSpace(r.Image),
			BackgroundColor: strings.TrimSpace(r.BackgroundColor),
		})
	}
	for _, r := range raw.Categories {
		cat.Categories = append(cat.Categories, Category{
			ID:       r.ID,
			Name:     strings.TrimSpace(r.Name),
			ImageRef: strings.TrimSpace(r.Image),
		})
	}
	for _, r := range raw.Products {
		p, err := r.product()
		if err != nil {
			return Catalog{}, err
		}
		cat.Products = append(cat.Products, p)
	}
	if err := cat.checkUnique(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

func (r productRecord) product() (Product, error) {
	list, err := decimal.NewFromString(r.ListPrice)
	if err != nil {
		return Product{}, fmt.Errorf("product %d list_price: %w", r.ID, err)
	}
	sale, err := decimal.NewFromString(r.SalePrice)
	if err != nil {
		return Product{}, fmt.Errorf("product %d sale_price: %w", r.ID, err)
	}
	if list.IsNegative() || sale.IsNegative() {
		return Product{}, fmt.Errorf("%w: product %d has a negative price", ErrInvalidCatalog, r.ID)
	}
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return Product{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		ListPrice:   list,
		SalePrice:   sale,
		ImageRef:    strings.TrimSpace(r.Image),
		Category:    strings.TrimSpace(r.Category),
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		InStock:     inStock,
		IsFavorite:  r.Favorite,
		IsInCart:    r.InCart,
		Tag:         strings.TrimSpace(r.Tag),
	}, nil
}
