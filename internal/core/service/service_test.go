package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/service"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) ReadCatalog(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) SaveCart(ctx context.Context, c domain.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockStateStore) LoadCart(ctx context.Context) (domain.Cart, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

func (m *MockStateStore) SaveSession(
	ctx context.Context, s *domain.Session,
) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStateStore) LoadSession(
	ctx context.Context,
) (*domain.Session, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "A", Title: "Alpha", Brand: "Nimbus", Category: "laptops",
			Price: 100, Stock: 2, Rating: 4.5},
		{ID: "B", Title: "Beta", Brand: "Vertex", Category: "phones",
			Price: 50, Stock: 0, Rating: 4.9},
	}
}

func permissiveStore() *MockStateStore {
	store := new(MockStateStore)
	store.On("SaveCart", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveSession", mock.Anything, mock.Anything).Return(nil)
	store.On("LoadCart", mock.Anything).Return(domain.Cart{}, nil)
	store.On("LoadSession", mock.Anything).Return(nil, nil)
	return store
}

func newStorefront(
	t *testing.T, store *MockStateStore,
) *service.Storefront {
	t.Helper()

	source := new(MockCatalogSource)
	source.On("ReadCatalog", mock.Anything).Return(testCatalog(), nil)

	s := service.New(source, store, nil, service.Options{
		PageSize:    8,
		MaxPrice:    10_000_000,
		ShippingFee: 5,
	})
	s.LoadCatalog(t.Context())
	return s
}

func TestLoadCatalog(t *testing.T) {
	t.Run("FailureLeavesCatalogEmpty", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("ReadCatalog", mock.Anything).
			Return(nil, errors.New("no such file"))

		s := service.New(source, permissiveStore(), nil, service.Options{})
		s.LoadCatalog(t.Context())

		v := s.ViewCatalog(t.Context())
		assert.Zero(t, v.Total)
		assert.Equal(t, 1, v.PageCount)
	})
}

func TestDispatchCatalogCommands(t *testing.T) {
	t.Run("FilterChangedResetsPage", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.PageChanged{Page: 2})
		require.NoError(t, err)

		err = s.Dispatch(t.Context(), domain.FilterChanged{
			Filters: domain.FilterSelection{Category: "phones"},
		})
		require.NoError(t, err)

		v := s.ViewCatalog(t.Context())
		assert.Equal(t, 1, v.Page)
		assert.Equal(t, 1, v.Total)
		require.Len(t, v.Items, 1)
		assert.Equal(t, "B", v.Items[0].ID)
	})

	t.Run("ZeroMaxPriceDefaultsToCeiling", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.FilterChanged{})
		require.NoError(t, err)

		v := s.ViewCatalog(t.Context())
		assert.Equal(t, 2, v.Total)
	})

	t.Run("SortChanged", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.SortChanged{
			Mode: domain.SortPriceAsc,
		})
		require.NoError(t, err)

		v := s.ViewCatalog(t.Context())
		require.Len(t, v.Items, 2)
		assert.Equal(t, "B", v.Items[0].ID)
	})

	t.Run("SearchChanged", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.SearchChanged{Query: "nimbus"})
		require.NoError(t, err)

		v := s.ViewCatalog(t.Context())
		assert.Equal(t, 1, v.Total)
	})
}

func TestDispatchCartCommands(t *testing.T) {
	t.Run("AdjustPersistsSnapshot", func(t *testing.T) {
		store := permissiveStore()
		s := newStorefront(t, store)

		err := s.Dispatch(t.Context(), domain.CartAdjusted{
			ProductID: "A", Delta: 2,
		})
		require.NoError(t, err)

		store.AssertCalled(
			t, "SaveCart", mock.Anything, domain.Cart{"A": 2},
		)

		summary := s.ViewCart(t.Context())
		assert.Equal(t, int64(200), summary.Subtotal)
		assert.Equal(t, int64(5), summary.Shipping)
		assert.Equal(t, int64(205), summary.Total)
	})

	t.Run("PersistFailureDoesNotFailCommand", func(t *testing.T) {
		store := permissiveStore()
		store.ExpectedCalls = nil
		store.On("SaveCart", mock.Anything, mock.Anything).
			Return(errors.New("db down"))

		s := newStorefront(t, store)
		err := s.Dispatch(t.Context(), domain.CartAdjusted{
			ProductID: "A", Delta: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("ClearIsIdempotent", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		require.NoError(t, s.Dispatch(t.Context(), domain.CartCleared{}))
		require.NoError(t, s.Dispatch(t.Context(), domain.CartCleared{}))

		assert.Zero(t, s.ViewCart(t.Context()).Items)
	})

	t.Run("RemoveAbsentIsNoop", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.CartRemoved{ProductID: "zzz"})
		assert.NoError(t, err)
	})
}

func TestDispatchAuthCommands(t *testing.T) {
	t.Run("LoginDerivesNameFromEmail", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.Login{
			Email: "ana@example.com", Password: "whatever",
		})
		require.NoError(t, err)

		sess := s.Session(t.Context())
		require.NotNil(t, sess)
		assert.Equal(t, "ana", sess.Name)
		assert.Equal(t, "ana@example.com", sess.Email)
	})

	t.Run("RegisterMismatchKeepsSessionAbsent", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.Register{
			Name: "Ana", Email: "ana@example.com",
			Password: "one", PasswordConfirm: "two",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
		assert.Nil(t, s.Session(t.Context()))
	})

	t.Run("RegisterMatchCreatesSession", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		err := s.Dispatch(t.Context(), domain.Register{
			Name: "Ana", Email: "ana@example.com",
			Password: "pw", PasswordConfirm: "pw",
		})
		require.NoError(t, err)

		sess := s.Session(t.Context())
		require.NotNil(t, sess)
		assert.Equal(t, "Ana", sess.Name)
	})

	t.Run("LogoutClearsSession", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		require.NoError(t, s.Dispatch(t.Context(), domain.Login{
			Email: "ana@example.com", Password: "pw",
		}))
		require.NoError(t, s.Dispatch(t.Context(), domain.Logout{}))
		assert.Nil(t, s.Session(t.Context()))
	})
}

func TestCheckout(t *testing.T) {
	t.Run("WithoutSession", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		require.NoError(t, s.Dispatch(t.Context(), domain.CartAdjusted{
			ProductID: "A", Delta: 1,
		}))

		err := s.Dispatch(t.Context(), domain.Checkout{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLoginRequired)

		// cart untouched
		assert.Equal(t, 1, s.ViewCart(t.Context()).Items)
	})

	t.Run("WithSessionClearsCart", func(t *testing.T) {
		s := newStorefront(t, permissiveStore())

		require.NoError(t, s.Dispatch(t.Context(), domain.Login{
			Email: "ana@example.com", Password: "pw",
		}))
		require.NoError(t, s.Dispatch(t.Context(), domain.CartAdjusted{
			ProductID: "A", Delta: 3,
		}))

		require.NoError(t, s.Dispatch(t.Context(), domain.Checkout{}))
		assert.Zero(t, s.ViewCart(t.Context()).Items)
		// session survives checkout
		assert.NotNil(t, s.Session(t.Context()))
	})
}

func TestEvents(t *testing.T) {
	t.Run("AcceptedCommandEmits", func(t *testing.T) {
		events := new(MockEventsProducer)
		events.On("ProduceEvent", mock.Anything, mock.Anything).Return(nil)

		source := new(MockCatalogSource)
		source.On("ReadCatalog", mock.Anything).Return(testCatalog(), nil)

		s := service.New(source, permissiveStore(), events, service.Options{})
		s.LoadCatalog(t.Context())

		err := s.Dispatch(t.Context(), domain.CartAdjusted{
			ProductID: "A", Delta: 2,
		})
		require.NoError(t, err)

		events.AssertCalled(t, "ProduceEvent", mock.Anything,
			mock.MatchedBy(func(evt domain.ClientEvent) bool {
				return evt.EventType == domain.EventCartAdjusted &&
					evt.ProductID == "A" && evt.Quantity == 2 &&
					evt.EventID != ""
			}))
	})

	t.Run("RejectedCommandDoesNotEmit", func(t *testing.T) {
		events := new(MockEventsProducer)

		source := new(MockCatalogSource)
		source.On("ReadCatalog", mock.Anything).Return(testCatalog(), nil)

		s := service.New(source, permissiveStore(), events, service.Options{})
		s.LoadCatalog(t.Context())

		err := s.Dispatch(t.Context(), domain.Checkout{})
		require.Error(t, err)
		events.AssertNotCalled(t, "ProduceEvent", mock.Anything, mock.Anything)
	})

	t.Run("EmitFailureDoesNotFailCommand", func(t *testing.T) {
		events := new(MockEventsProducer)
		events.On("ProduceEvent", mock.Anything, mock.Anything).
			Return(errors.New("broker down"))

		source := new(MockCatalogSource)
		source.On("ReadCatalog", mock.Anything).Return(testCatalog(), nil)

		s := service.New(source, permissiveStore(), events, service.Options{})
		s.LoadCatalog(t.Context())

		err := s.Dispatch(t.Context(), domain.CartCleared{})
		assert.NoError(t, err)
	})
}

func TestRestore(t *testing.T) {
	store := permissiveStore()
	store.ExpectedCalls = nil
	store.On("LoadCart", mock.Anything).Return(domain.Cart{"A": 2}, nil)
	store.On("LoadSession", mock.Anything).
		Return(&domain.Session{Name: "ana", Email: "ana@example.com"}, nil)

	source := new(MockCatalogSource)
	source.On("ReadCatalog", mock.Anything).Return(testCatalog(), nil)

	s := service.New(source, store, nil, service.Options{ShippingFee: 5})
	s.LoadCatalog(t.Context())
	require.NoError(t, s.Restore(t.Context()))

	assert.Equal(t, 2, s.ViewCart(t.Context()).Items)
	require.NotNil(t, s.Session(t.Context()))
}
