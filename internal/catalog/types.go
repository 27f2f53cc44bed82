package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a single card in the product grid.
type Product struct {
	ID          int64
	Name        string
	Description string
	ListPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	ImageRef    string
	Category    string // name of a Category; not enforced
	Rating      float64
	ReviewCount int
	InStock     bool
	IsFavorite  bool
	IsInCart    bool
	Tag         string
}

// OnSale reports whether the sale price undercuts the list price.
func (p Product) OnSale() bool {
	return p.SalePrice.LessThan(p.ListPrice)
}

// DiscountPercent returns the whole-percent reduction from list to sale price.
func (p Product) DiscountPercent() int {
	if !p.ListPrice.IsPositive() || !p.OnSale() {
		return 0
	}
	off := p.ListPrice.Sub(p.SalePrice).Div(p.ListPrice).Mul(decimal.NewFromInt(100))
	return int(off.Round(0).IntPart())
}

// HasTag reports whether the product carries a display label.
func (p Product) HasTag() bool {
	return strings.TrimSpace(p.Tag) != ""
}

// Category is an entry in the horizontal category selector.
type Category struct {
	ID       int64
	Name     string
	ImageRef string
}

// Promotion is one page of the rotating banner.
type Promotion struct {
	ID              int64
	Title           string
	Subtitle        string
	DateRange       string
	ImageRef        string
	BackgroundColor string
}

// Catalog is the full seed for one browse session.
type Catalog struct {
	Promotions []Promotion
	Categories []Category
	Products   []Product
}
