package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
)

// GET v1/catalog?category=&brand=&max_price=&in_stock=&search=&sort=&page= (200 OK)
// GET v1/catalog/brands (200 OK)
// GET v1/catalog/suggest?q=query (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)

type CatalogHandler struct {
	dispatcher port.CommandDispatcher
	viewer     port.CatalogViewer
	finder     port.ProductFinder
	suggester  port.Suggester
	brands     port.BrandLister
}

func RegisterCatalog(
	mux *http.ServeMux,
	dispatcher port.CommandDispatcher,
	viewer port.CatalogViewer,
	finder port.ProductFinder,
	suggester port.Suggester,
	brands port.BrandLister,
) {
	h := CatalogHandler{dispatcher, viewer, finder, suggester, brands}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
	mux.HandleFunc("GET /v1/catalog/brands", h.GetBrands)
	mux.HandleFunc("GET /v1/catalog/suggest", h.GetSuggestions)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	if err := h.applyQuery(r); err != nil {
		http.Error(w, "invalid query parameters", http.StatusBadRequest)
		log.Warn("failed to apply catalog query", "err", err)
		return
	}

	view := h.viewer.ViewCatalog(r.Context())
	writeJSON(w, log, CatalogResponse{
		Items:     toProducts(view.Items),
		Total:     view.Total,
		Page:      view.Page,
		PageCount: view.PageCount,
		PageSize:  view.PageSize,
	})
}

// applyQuery reduces the query parameters into the storefront state.
// Absent parameter groups leave the corresponding state untouched.
func (h CatalogHandler) applyQuery(r *http.Request) error {
	q := r.URL.Query()
	ctx := r.Context()

	if hasFilterParams(r) {
		f := domain.FilterSelection{
			Category: q.Get("category"),
			Brand:    q.Get("brand"),
			Search:   q.Get("search"),
		}
		if v := q.Get("max_price"); v != "" {
			maxPrice, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			f.MaxPrice = maxPrice
		}
		if v := q.Get("in_stock"); v != "" {
			inStock, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			f.InStock = inStock
		}
		err := h.dispatcher.Dispatch(ctx, domain.FilterChanged{Filters: f})
		if err != nil {
			return err
		}
	}

	if v := q.Get("sort"); v != "" {
		mode := domain.ParseSortMode(v)
		err := h.dispatcher.Dispatch(ctx, domain.SortChanged{Mode: mode})
		if err != nil {
			return err
		}
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		err = h.dispatcher.Dispatch(ctx, domain.PageChanged{Page: page})
		if err != nil {
			return err
		}
	}

	return nil
}

func hasFilterParams(r *http.Request) bool {
	q := r.URL.Query()
	for _, p := range []string{
		"category", "brand", "max_price", "in_stock", "search",
	} {
		if q.Has(p) {
			return true
		}
	}
	return false
}

func (h CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetBrands"
	log := slog.With("op", op)

	brands := h.brands.Brands(r.Context())
	if brands == nil {
		brands = []string{}
	}
	writeJSON(w, log, brands)
}

func (h CatalogHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetSuggestions"
	log := slog.With("op", op)

	ps := h.suggester.Suggest(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, log, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	detail, err := h.finder.ProductDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to get product detail", "err", err)
		return
	}

	reviews := make([]Review, 0, len(detail.Reviews))
	for _, rv := range detail.Reviews {
		reviews = append(reviews, Review{
			Author: rv.Author, Text: rv.Text, Rating: rv.Rating,
		})
	}

	writeJSON(w, log, ProductDetailResponse{
		Product:  toProduct(detail.Product),
		Gallery:  detail.Gallery,
		Discount: detail.Discount,
		Reviews:  reviews,
	})
}
