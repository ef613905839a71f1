// Package catalog covers product browsing (pure filter/sort/paginate
// functions over a product snapshot) and product management by sellers and
// admins.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/models"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortRating    Sort = "rating"
	SortPopular   Sort = "popular"
)

// Filters combine as a conjunction. Zero values mean "not set", except
// PriceMin, where zero is simply the lowest sensible bound.
type Filters struct {
	// Query matches as a case-insensitive substring of title, description
	// or brand.
	Query string
	// CategoryID matches the product's category or, for a top-level
	// category, any of its direct children.
	CategoryID string
	PriceMin   decimal.Decimal
	// PriceMax is inclusive; zero means no upper bound.
	PriceMax decimal.Decimal
	Brand    string
	SellerID string
	// MinRating keeps products with RatingAvg at or above it.
	MinRating float64
	SortBy    Sort
}

// Query filters and sorts a product snapshot. Inactive products never
// appear. The input slice is not modified; ties keep their input order.
func Query(products []models.Product, categories []models.Category, f Filters) []models.Product {
	childIDs := map[string]bool{}
	if f.CategoryID != "" {
		for _, c := range categories {
			if c.ParentID == f.CategoryID {
				childIDs[c.ID] = true
			}
		}
	}

	needle := strings.ToLower(f.Query)

	var matched []models.Product
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID && !childIDs[p.CategoryID] {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.SellerID != "" && p.SellerID != f.SellerID {
			continue
		}
		if f.MinRating > 0 && p.RatingAvg < f.MinRating {
			continue
		}
		if p.Price.LessThan(f.PriceMin) {
			continue
		}
		if !f.PriceMax.IsZero() && p.Price.GreaterThan(f.PriceMax) {
			continue
		}
		if needle != "" && !matchesQuery(p, needle) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, f.SortBy)
	return matched
}

func matchesQuery(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

func sortProducts(products []models.Product, by Sort) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].RatingAvg > products[j].RatingAvg
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].RatingCount > products[j].RatingCount
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// PageSize is the fixed grid size of the storefront.
const PageSize = 12

type Page struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Paginate slices an already-filtered list. Pages are 1-indexed and clamped
// into the valid range, so out-of-range requests return the nearest page
// rather than an empty one.
func Paginate(products []models.Product, page int) Page {
	totalPages := (len(products) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	return Page{
		Items:      products[start:end],
		Total:      len(products),
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}
}

// Brands lists the distinct brands of a product snapshot, sorted, for the
// filter dropdown.
func Brands(products []models.Product) []string {
	seen := map[string]bool{}
	var brands []string
	for _, p := range products {
		if p.Brand != "" && !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands
}
