package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tecnostore/storefront/internal/core/cart"
	"github.com/tecnostore/storefront/internal/core/catalog"
	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
)

var _ port.CommandDispatcher = (*Storefront)(nil)
var _ port.CatalogViewer = (*Storefront)(nil)
var _ port.CartViewer = (*Storefront)(nil)
var _ port.ProductFinder = (*Storefront)(nil)
var _ port.Suggester = (*Storefront)(nil)
var _ port.BrandLister = (*Storefront)(nil)
var _ port.SessionViewer = (*Storefront)(nil)

type Options struct {
	PageSize     int
	MaxPrice     int64
	ShippingFee  int64
	SuggestLimit int
}

const (
	defaultPageSize     = 8
	defaultSuggestLimit = 8
)

func (o *Options) normalize() {
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.SuggestLimit <= 0 {
		o.SuggestLimit = defaultSuggestLimit
	}
}

// Storefront owns the application state and reduces commands over it.
// Mutations are synchronous read-modify-persist sequences under one lock;
// the HTTP adapter may call in concurrently.
type Storefront struct {
	mu      sync.Mutex
	state   domain.State
	source  port.CatalogSource
	store   port.StateStore
	events  port.EventsProducer
	options Options
}

func New(
	source port.CatalogSource,
	store port.StateStore,
	events port.EventsProducer,
	options Options,
) *Storefront {
	options.normalize()
	return &Storefront{
		state: domain.State{
			Filters: domain.FilterSelection{MaxPrice: options.MaxPrice},
			Sort:    domain.SortRelevance,
			Page:    1,
			Cart:    domain.Cart{},
		},
		source:  source,
		store:   store,
		events:  events,
		options: options,
	}
}

// LoadCatalog reads the product list once. A read failure is terminal for
// the session: the catalog stays empty and no retry is scheduled.
func (s *Storefront) LoadCatalog(ctx context.Context) {
	const op = "Storefront.LoadCatalog"
	log := slog.With("op", op)

	ps, err := s.source.ReadCatalog(ctx)
	if err != nil {
		log.Error("failed to load catalog, storefront stays empty", "err", err)
		return
	}

	s.mu.Lock()
	s.state.Catalog = ps
	s.mu.Unlock()
	log.Info("catalog loaded", "nProducts", len(ps))
}

// Restore rehydrates cart and session snapshots. The store already treats
// missing or corrupt snapshots as empty, so errors here are wiring faults.
func (s *Storefront) Restore(ctx context.Context) error {
	const op = "Storefront.Restore"

	c, err := s.store.LoadCart(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sess, err := s.store.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.state.Cart = c
	s.state.Session = sess
	s.mu.Unlock()
	return nil
}

// Dispatch reduces a single command into the state. Validation failures
// come back as domain sentinel errors with the state untouched; snapshot
// persistence and event emission never fail the command.
func (s *Storefront) Dispatch(ctx context.Context, cmd domain.Command) error {
	const op = "Storefront.Dispatch"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reduce(ctx, cmd); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emitEvent(ctx, cmd)
	return nil
}

func (s *Storefront) reduce(ctx context.Context, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.FilterChanged:
		f := c.Filters
		if f.MaxPrice <= 0 {
			f.MaxPrice = s.options.MaxPrice
		}
		s.state.Filters = f
		s.state.Page = 1
	case domain.SortChanged:
		s.state.Sort = c.Mode
		s.state.Page = 1
	case domain.PageChanged:
		s.state.Page = c.Page
	case domain.SearchChanged:
		s.state.Filters.Search = c.Query
		s.state.Page = 1
	case domain.CartAdjusted:
		s.state.Cart = cart.Adjust(s.state.Cart, c.ProductID, c.Delta)
		s.persistCart(ctx)
	case domain.CartRemoved:
		s.state.Cart = cart.Remove(s.state.Cart, c.ProductID)
		s.persistCart(ctx)
	case domain.CartCleared:
		s.state.Cart = cart.Clear(s.state.Cart)
		s.persistCart(ctx)
	case domain.Checkout:
		if s.state.Session == nil {
			return domain.ErrLoginRequired
		}
		s.state.Cart = cart.Clear(s.state.Cart)
		s.persistCart(ctx)
	case domain.Login:
		s.state.Session = &domain.Session{
			Name:  domain.NameFromEmail(c.Email),
			Email: c.Email,
		}
		s.persistSession(ctx)
	case domain.Register:
		if c.Password != c.PasswordConfirm {
			return domain.ErrPasswordMismatch
		}
		s.state.Session = &domain.Session{Name: c.Name, Email: c.Email}
		s.persistSession(ctx)
	case domain.Logout:
		s.state.Session = nil
		s.persistSession(ctx)
	default:
		return domain.ErrUnknownCommand
	}
	return nil
}

func (s *Storefront) persistCart(ctx context.Context) {
	const op = "Storefront.persistCart"
	if err := s.store.SaveCart(ctx, s.state.Cart); err != nil {
		slog.With("op", op).Warn("failed to persist cart snapshot", "err", err)
	}
}

func (s *Storefront) persistSession(ctx context.Context) {
	const op = "Storefront.persistSession"
	if err := s.store.SaveSession(ctx, s.state.Session); err != nil {
		slog.With("op", op).Warn("failed to persist session snapshot", "err", err)
	}
}

// emitEvent streams the accepted command for analytics, best effort.
func (s *Storefront) emitEvent(ctx context.Context, cmd domain.Command) {
	const op = "Storefront.emitEvent"

	if s.events == nil {
		return
	}

	evt := domain.ClientEvent{
		EventID:   uuid.NewString(),
		EventType: cmd.EventType(),
		UserEmail: s.sessionEmail(),
		UnixMS:    time.Now().UnixMilli(),
	}
	switch c := cmd.(type) {
	case domain.CartAdjusted:
		evt.ProductID = c.ProductID
		evt.Quantity = c.Delta
	case domain.CartRemoved:
		evt.ProductID = c.ProductID
	}

	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.With("op", op).Warn("failed to produce client event", "err", err)
	}
}

func (s *Storefront) sessionEmail() string {
	if s.state.Session == nil {
		return ""
	}
	return s.state.Session.Email
}

func (s *Storefront) ViewCatalog(ctx context.Context) domain.CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return catalog.Query(
		s.state.Catalog, s.state.Filters, s.state.Sort,
		s.state.Page, s.options.PageSize,
	)
}

func (s *Storefront) ViewCart(ctx context.Context) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cart.Summarize(
		s.state.Cart,
		cart.CatalogLookup(s.state.Catalog),
		s.options.ShippingFee,
	)
}

func (s *Storefront) ProductDetail(
	ctx context.Context, id string,
) (domain.ProductDetail, error) {
	const op = "Storefront.ProductDetail"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := catalog.Find(s.state.Catalog, id)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery := p.Images
	if len(gallery) == 0 {
		gallery = []string{domain.PlaceholderImage(p.ID)}
	}

	return domain.ProductDetail{
		Product:  p,
		Gallery:  gallery,
		Discount: p.Discounted(),
		Reviews:  sampleReviews(),
	}, nil
}

// sampleReviews is static demo content, not backed by any review store.
func sampleReviews() []domain.Review {
	return []domain.Review{
		{Author: "Ana", Text: "Excellent quality", Rating: 5},
		{Author: "Luis", Text: "Good price and performance", Rating: 4},
		{Author: "Maria", Text: "Fast delivery, recommended", Rating: 5},
	}
}

func (s *Storefront) Suggest(ctx context.Context, q string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return catalog.Suggest(s.state.Catalog, q, s.options.SuggestLimit)
}

func (s *Storefront) Brands(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return catalog.Brands(s.state.Catalog)
}

func (s *Storefront) Session(ctx context.Context) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session == nil {
		return nil
	}
	sess := *s.state.Session
	return &sess
}
