// Package catalog implements the storefront's deterministic
// filter/sort/paginate pipeline over the full product list.
package catalog

import (
	"sort"
	"strings"

	"github.com/intronerd12/Nourishy-sub000/models"
)

// DefaultPageSize is the storefront grid size.
const DefaultPageSize = 12

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
	SortFeatured  SortKey = "featured"
)

// Filter holds the active predicates. Zero values mean "not active".
// All active predicates must pass (conjunctive).
type Filter struct {
	Category     string
	Search       string  // case-insensitive substring on name
	PriceMax     float64 // 0 = unbounded
	MinRating    float64
	OnlyReviewed bool
	SortKey      SortKey
}

// Matches reports whether a single product passes every active predicate.
func (f Filter) Matches(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if f.MinRating > 0 && p.Ratings < f.MinRating {
		return false
	}
	if f.OnlyReviewed && p.NumOfReviews == 0 {
		return false
	}
	return true
}

// Apply filters and sorts the product list. The input slice is not mutated.
func Apply(products []models.Product, f Filter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}

	switch f.SortKey {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Ratings > out[j].Ratings })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortFeatured:
		// featured first, input order otherwise
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out
}

// Page slices page number `page` (1-based) of size `size` out of a filtered
// list. Pages past the end are empty, never an error.
func Page(products []models.Product, page, size int) []models.Product {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
