package domain

import "strings"

type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNewest    SortMode = "newest"
)

// ParseSortMode maps free-form input to a known mode, falling back to
// relevance for anything unrecognized.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return SortMode(s)
	default:
		return SortRelevance
	}
}

// FilterSelection is the current set of narrowing criteria. Zero values mean
// "no constraint" except MaxPrice, which callers default to the configured
// ceiling before filtering.
type FilterSelection struct {
	Category string
	Brand    string
	MaxPrice int64
	InStock  bool
	Search   string
}

type CatalogView struct {
	Items     []Product
	Total     int
	Page      int
	PageCount int
	PageSize  int
}

// Cart maps product id to a strictly positive quantity. An adjustment that
// drops a quantity to zero or below removes the entry.
type Cart map[string]int

func (c Cart) Clone() Cart {
	dst := make(Cart, len(c))
	for id, qty := range c {
		dst[id] = qty
	}
	return dst
}

// Items is the badge count: the sum of stored quantities, regardless of
// whether the ids still resolve against the catalog.
func (c Cart) Items() int {
	var n int
	for _, qty := range c {
		n += qty
	}
	return n
}

type CartLine struct {
	ProductID string
	Title     string
	UnitPrice int64
	Quantity  int
	LineTotal int64
	Image     string
}

type CartSummary struct {
	Lines    []CartLine
	Items    int
	Subtotal int64
	Shipping int64
	Total    int64
}

// Session marks a mocked "logged in" user. A nil session means logged out.
type Session struct {
	Name  string
	Email string
}

// NameFromEmail derives a display name from the email local part.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// State is the whole storefront state: the catalog with the active
// selection, the cart and the session. It is owned by the service and
// transformed by the pure catalog and cart functions.
type State struct {
	Catalog []Product
	Filters FilterSelection
	Sort    SortMode
	Page    int
	Cart    Cart
	Session *Session
}
