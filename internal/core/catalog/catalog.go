// Package catalog derives the filtered, sorted, paginated catalog view.
// Every function is a pure transformation over the product list; callers
// re-derive explicitly after each selection change.
package catalog

import (
	"sort"
	"strings"

	"github.com/tecnostore/storefront/internal/core/domain"
)

// Filter narrows the product list by the selection. Predicates apply in a
// fixed order: category, brand, price ceiling, stock, then the free-text
// search over title or brand.
func Filter(
	ps []domain.Product, f domain.FilterSelection,
) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, p)
	}

	if f.Category != "" {
		out = keep(out, func(p domain.Product) bool {
			return p.Category == f.Category
		})
	}
	if f.Brand != "" {
		out = keep(out, func(p domain.Product) bool {
			return p.Brand == f.Brand
		})
	}
	if f.MaxPrice > 0 {
		out = keep(out, func(p domain.Product) bool {
			return p.Price <= f.MaxPrice
		})
	}
	if f.InStock {
		out = keep(out, func(p domain.Product) bool {
			return p.Stock > 0
		})
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		out = keep(out, func(p domain.Product) bool {
			return matchesQuery(p, q)
		})
	}
	return out
}

func keep(
	ps []domain.Product, pred func(domain.Product) bool,
) []domain.Product {
	out := ps[:0]
	for _, p := range ps {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Title), lowered) ||
		strings.Contains(strings.ToLower(p.Brand), lowered)
}

// Sort orders a copy of the list by the mode. The sort is stable so that
// equal-key products keep their input order.
func Sort(ps []domain.Product, mode domain.SortMode) []domain.Product {
	out := make([]domain.Product, len(ps))
	copy(out, ps)

	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case domain.SortNewest:
		// Identifier order stands in for recency: the catalog file assigns
		// ids monotonically at authoring time.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

// PageCount never reports less than one page, even for an empty result.
func PageCount(total, size int) int {
	if size <= 0 {
		return 1
	}
	n := (total + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage bounds a 1-based page number to [1, pageCount].
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Paginate returns the contiguous slice for the 1-based page. An
// out-of-range start yields an empty slice, never an error.
func Paginate(ps []domain.Product, page, size int) []domain.Product {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(ps) {
		return nil
	}
	end := start + size
	if end > len(ps) {
		end = len(ps)
	}
	return ps[start:end]
}

// Query composes filter, sort and pagination into the derived view. The
// requested page is clamped so the view never points past the last page.
func Query(
	ps []domain.Product,
	f domain.FilterSelection,
	mode domain.SortMode,
	page, size int,
) domain.CatalogView {
	narrowed := Sort(Filter(ps, f), mode)

	pageCount := PageCount(len(narrowed), size)
	current := ClampPage(page, pageCount)

	return domain.CatalogView{
		Items:     Paginate(narrowed, current, size),
		Total:     len(narrowed),
		Page:      current,
		PageCount: pageCount,
		PageSize:  size,
	}
}

// Find resolves a product by id.
func Find(ps []domain.Product, id string) (domain.Product, error) {
	for _, p := range ps {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Suggest returns up to limit products whose title or brand contains the
// query, case-insensitively. An empty query suggests nothing.
func Suggest(ps []domain.Product, q string, limit int) []domain.Product {
	q = strings.TrimSpace(q)
	if q == "" || limit <= 0 {
		return nil
	}

	lowered := strings.ToLower(q)
	var out []domain.Product
	for _, p := range ps {
		if matchesQuery(p, lowered) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Brands lists the distinct brands in the catalog, sorted.
func Brands(ps []domain.Product) []string {
	seen := make(map[string]struct{}, len(ps))
	var out []string
	for _, p := range ps {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out
}
