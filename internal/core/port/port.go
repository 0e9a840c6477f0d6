package port

import (
	"context"

	"github.com/tecnostore/storefront/internal/core/domain"
)

// Outbound ports.

type CatalogSource interface {
	ReadCatalog(context.Context) ([]domain.Product, error)
}

// StateStore persists whole-entity snapshots, one key per entity. Loads must
// degrade to empty/absent on missing or corrupt data.
type StateStore interface {
	SaveCart(context.Context, domain.Cart) error
	LoadCart(context.Context) (domain.Cart, error)
	SaveSession(context.Context, *domain.Session) error
	LoadSession(context.Context) (*domain.Session, error)
}

type EventsProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
}

// Inbound ports.

type CommandDispatcher interface {
	Dispatch(context.Context, domain.Command) error
}

type CatalogViewer interface {
	ViewCatalog(context.Context) domain.CatalogView
}

type CartViewer interface {
	ViewCart(context.Context) domain.CartSummary
}

type ProductFinder interface {
	ProductDetail(context.Context, string) (domain.ProductDetail, error)
}

type Suggester interface {
	Suggest(context.Context, string) []domain.Product
}

type BrandLister interface {
	Brands(context.Context) []string
}

type SessionViewer interface {
	Session(context.Context) *domain.Session
}

type ActivityViewer interface {
	EventCount(string) (int64, error)
}
