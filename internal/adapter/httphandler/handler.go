package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tecnostore/storefront/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Brand:          p.Brand,
		Category:       p.Category,
		Price:          p.Price,
		PreviousPrice:  p.PreviousPrice,
		Stock:          p.Stock,
		Rating:         p.Rating,
		Tags:           p.Tags,
		Specifications: p.Specifications,
		Images:         p.Images,
	}
}

func toProducts(ps []domain.Product) []Product {
	items := make([]Product, 0, len(ps))
	for _, p := range ps {
		items = append(items, toProduct(p))
	}
	return items
}

func toCartResponse(s domain.CartSummary) CartResponse {
	lines := make([]CartLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, CartLine{
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
			Image:     l.Image,
		})
	}
	return CartResponse{
		Lines:    lines,
		Items:    s.Items,
		Subtotal: s.Subtotal,
		Shipping: s.Shipping,
		Total:    s.Total,
	}
}
