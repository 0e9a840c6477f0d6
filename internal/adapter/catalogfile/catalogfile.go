// Package catalogfile reads the product catalog from a static JSON
// document. The document is the external contract: an array of product
// records with fixed field names.
package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
)

var _ port.CatalogSource = (*CatalogFile)(nil)

type product struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          int64             `json:"price"`
	PreviousPrice  int64             `json:"previous_price,omitempty"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
}

type CatalogFile struct {
	path string
}

func New(path string) CatalogFile {
	return CatalogFile{path}
}

func (f CatalogFile) ReadCatalog(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogFile.ReadCatalog"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var vs []product
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(vs))
	for _, v := range vs {
		ps = append(ps, toDomain(v))
	}

	log.Info("catalog file read", "path", f.path, "nProducts", len(ps))
	return ps, nil
}

func toDomain(v product) domain.Product {
	return domain.Product{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		Brand:          v.Brand,
		Category:       v.Category,
		Price:          v.Price,
		PreviousPrice:  v.PreviousPrice,
		Stock:          v.Stock,
		Rating:         v.Rating,
		Tags:           v.Tags,
		Specifications: v.Specifications,
		Images:         v.Images,
	}
}
