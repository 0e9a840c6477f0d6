package domain

import "fmt"

type Product struct {
	ID             string
	Title          string
	Description    string
	Brand          string
	Category       string
	Price          int64
	PreviousPrice  int64
	Stock          int
	Rating         float64
	Tags           []string
	Specifications map[string]string
	Images         []string
}

// Discounted reports whether the product carries a visible price drop.
func (p Product) Discounted() bool {
	return p.PreviousPrice > p.Price
}

// PlaceholderImage is used when a product supplies no gallery images.
func PlaceholderImage(productID string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/600/600", productID)
}

type Review struct {
	Author string
	Text   string
	Rating int
}

// ProductDetail is the denormalized view for the detail page: the gallery
// always holds at least one image and the review list is static sample
// content, there is no review store behind it.
type ProductDetail struct {
	Product  Product
	Gallery  []string
	Discount bool
	Reviews  []Review
}
