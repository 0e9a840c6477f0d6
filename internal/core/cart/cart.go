// Package cart holds the cart aggregation logic: quantity adjustments that
// never store non-positive quantities and totals that tolerate cart lines
// whose product has left the catalog.
package cart

import (
	"sort"

	"github.com/tecnostore/storefront/internal/core/domain"
)

// ProductLookup resolves a product id against the catalog. The second
// return reports whether the id still resolves.
type ProductLookup func(id string) (domain.Product, bool)

// Adjust adds a signed delta to the quantity of id, treating an absent
// entry as zero. A result of zero or below removes the entry instead of
// storing it. The input cart is not mutated.
func Adjust(c domain.Cart, id string, delta int) domain.Cart {
	out := c.Clone()
	qty := out[id] + delta
	if qty <= 0 {
		delete(out, id)
		return out
	}
	out[id] = qty
	return out
}

// Remove deletes the entry unconditionally. Removing an absent id is a
// no-op.
func Remove(c domain.Cart, id string) domain.Cart {
	out := c.Clone()
	delete(out, id)
	return out
}

func Clear(domain.Cart) domain.Cart {
	return domain.Cart{}
}

// Summarize derives line totals and the money totals. Entries whose product
// no longer resolves are skipped from lines and money, never reported as an
// error; the badge item count still covers every stored quantity. Shipping
// is the fixed fee whenever the subtotal is positive.
func Summarize(
	c domain.Cart, lookup ProductLookup, shippingFee int64,
) domain.CartSummary {
	s := domain.CartSummary{Items: c.Items()}

	for id, qty := range c {
		p, ok := lookup(id)
		if !ok {
			continue
		}

		image := domain.PlaceholderImage(p.ID)
		if len(p.Images) > 0 {
			image = p.Images[0]
		}

		line := domain.CartLine{
			ProductID: p.ID,
			Title:     p.Title,
			UnitPrice: p.Price,
			Quantity:  qty,
			LineTotal: p.Price * int64(qty),
			Image:     image,
		}
		s.Lines = append(s.Lines, line)
		s.Subtotal += line.LineTotal
	}

	sort.Slice(s.Lines, func(i, j int) bool {
		return s.Lines[i].ProductID < s.Lines[j].ProductID
	})

	if s.Subtotal > 0 {
		s.Shipping = shippingFee
	}
	s.Total = s.Subtotal + s.Shipping
	return s
}

// CatalogLookup adapts a product list to a ProductLookup.
func CatalogLookup(ps []domain.Product) ProductLookup {
	byID := make(map[string]domain.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	return func(id string) (domain.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}
