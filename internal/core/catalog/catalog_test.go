package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecnostore/storefront/internal/core/catalog"
	"github.com/tecnostore/storefront/internal/core/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p-001", Title: "Laptop Pro 15", Brand: "Nimbus",
			Category: "laptops", Price: 4500, Stock: 3, Rating: 4.7,
		},
		{
			ID: "p-002", Title: "Laptop Air 13", Brand: "Nimbus",
			Category: "laptops", Price: 3200, Stock: 0, Rating: 4.2,
		},
		{
			ID: "p-003", Title: "Phone X", Brand: "Vertex",
			Category: "phones", Price: 2800, Stock: 10, Rating: 4.7,
		},
		{
			ID: "p-004", Title: "Phone Mini", Brand: "Vertex",
			Category: "phones", Price: 1500, Stock: 5, Rating: 3.9,
		},
		{
			ID: "p-005", Title: "Headset Go", Brand: "Aural",
			Category: "audio", Price: 300, Stock: 12, Rating: 4.9,
		},
	}
}

func TestFilter(t *testing.T) {
	ps := testProducts()

	t.Run("NoConstraints", func(t *testing.T) {
		got := catalog.Filter(ps, domain.FilterSelection{})
		assert.Len(t, got, len(ps))
	})

	t.Run("Category", func(t *testing.T) {
		got := catalog.Filter(ps, domain.FilterSelection{Category: "phones"})
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, "phones", p.Category)
		}
	})

	t.Run("Brand", func(t *testing.T) {
		got := catalog.Filter(ps, domain.FilterSelection{Brand: "Nimbus"})
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, "Nimbus", p.Brand)
		}
	})

	t.Run("MaxPriceInclusive", func(t *testing.T) {
		got := catalog.Filter(ps, domain.FilterSelection{MaxPrice: 2800})
		require.Len(t, got, 3)
		for _, p := range got {
			assert.LessOrEqual(t, p.Price, int64(2800))
		}
	})

	t.Run("InStock", func(t *testing.T) {
		got := catalog.Filter(ps, domain.FilterSelection{InStock: true})
		require.Len(t, got, 4)
		for _, p := range got {
			assert.Positive(t, p.Stock)
		}
	})

	t.Run("SearchTitleOrBrandCaseInsensitive", func(t *testing.T) {
		byTitle := catalog.Filter(ps, domain.FilterSelection{Search: "laptop"})
		assert.Len(t, byTitle, 2)

		byBrand := catalog.Filter(ps, domain.FilterSelection{Search: "VERTEX"})
		assert.Len(t, byBrand, 2)
	})

	t.Run("Conjunction", func(t *testing.T) {
		sel := domain.FilterSelection{
			Category: "laptops",
			Brand:    "Nimbus",
			MaxPrice: 4000,
			InStock:  true,
		}
		got := catalog.Filter(ps, sel)
		assert.Empty(t, got) // the cheap laptop is out of stock

		sel.InStock = false
		got = catalog.Filter(ps, sel)
		require.Len(t, got, 1)
		assert.Equal(t, "p-002", got[0].ID)
	})

	t.Run("InputUntouched", func(t *testing.T) {
		before := testProducts()
		_ = catalog.Filter(before, domain.FilterSelection{Category: "audio"})
		assert.Equal(t, testProducts(), before)
	})
}

func TestSort(t *testing.T) {
	ps := testProducts()

	t.Run("PriceAscending", func(t *testing.T) {
		got := catalog.Sort(ps, domain.SortPriceAsc)
		require.Len(t, got, len(ps))
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
		}
	})

	t.Run("PriceDescending", func(t *testing.T) {
		got := catalog.Sort(ps, domain.SortPriceDesc)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
		}
	})

	t.Run("NewestByIDDescending", func(t *testing.T) {
		got := catalog.Sort(ps, domain.SortNewest)
		assert.Equal(t, "p-005", got[0].ID)
		assert.Equal(t, "p-001", got[len(got)-1].ID)
	})

	t.Run("RelevanceStableOnTies", func(t *testing.T) {
		got := catalog.Sort(ps, domain.SortRelevance)
		// p-001 and p-003 share rating 4.7 and must keep input order.
		require.Len(t, got, len(ps))
		assert.Equal(t, "p-005", got[0].ID)
		assert.Equal(t, "p-001", got[1].ID)
		assert.Equal(t, "p-003", got[2].ID)
	})

	t.Run("Permutation", func(t *testing.T) {
		got := catalog.Sort(ps, domain.SortPriceAsc)
		ids := make(map[string]int)
		for _, p := range got {
			ids[p.ID]++
		}
		assert.Len(t, ids, len(ps))
	})
}

func TestPagination(t *testing.T) {
	t.Run("PageCount", func(t *testing.T) {
		assert.Equal(t, 1, catalog.PageCount(0, 8))
		assert.Equal(t, 1, catalog.PageCount(8, 8))
		assert.Equal(t, 2, catalog.PageCount(9, 8))
		assert.Equal(t, 3, catalog.PageCount(17, 8))
	})

	t.Run("ClampPage", func(t *testing.T) {
		assert.Equal(t, 1, catalog.ClampPage(0, 3))
		assert.Equal(t, 2, catalog.ClampPage(2, 3))
		assert.Equal(t, 3, catalog.ClampPage(9, 3))
	})

	t.Run("Slice", func(t *testing.T) {
		ps := testProducts()
		first := catalog.Paginate(ps, 1, 2)
		require.Len(t, first, 2)
		assert.Equal(t, "p-001", first[0].ID)

		last := catalog.Paginate(ps, 3, 2)
		require.Len(t, last, 1)
		assert.Equal(t, "p-005", last[0].ID)
	})

	t.Run("OutOfRangeIsEmpty", func(t *testing.T) {
		ps := testProducts()
		assert.Empty(t, catalog.Paginate(ps, 4, 2))
		assert.Empty(t, catalog.Paginate(ps, 100, 8))
	})
}

func TestQuery(t *testing.T) {
	ps := testProducts()

	t.Run("ComposedView", func(t *testing.T) {
		v := catalog.Query(ps, domain.FilterSelection{Category: "phones"},
			domain.SortPriceAsc, 1, 8)
		assert.Equal(t, 2, v.Total)
		assert.Equal(t, 1, v.PageCount)
		require.Len(t, v.Items, 2)
		assert.Equal(t, "p-004", v.Items[0].ID)
	})

	t.Run("PageClampedToLast", func(t *testing.T) {
		v := catalog.Query(ps, domain.FilterSelection{}, domain.SortRelevance, 99, 2)
		assert.Equal(t, 3, v.PageCount)
		assert.Equal(t, 3, v.Page)
		assert.Len(t, v.Items, 1)
	})

	t.Run("EmptyResultHasOnePage", func(t *testing.T) {
		v := catalog.Query(ps, domain.FilterSelection{Category: "nope"},
			domain.SortRelevance, 1, 8)
		assert.Zero(t, v.Total)
		assert.Equal(t, 1, v.PageCount)
		assert.Equal(t, 1, v.Page)
		assert.Empty(t, v.Items)
	})
}

func TestFind(t *testing.T) {
	ps := testProducts()

	p, err := catalog.Find(ps, "p-003")
	require.NoError(t, err)
	assert.Equal(t, "Phone X", p.Title)

	_, err = catalog.Find(ps, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSuggest(t *testing.T) {
	ps := testProducts()

	t.Run("EmptyQuery", func(t *testing.T) {
		assert.Empty(t, catalog.Suggest(ps, "  ", 8))
	})

	t.Run("MatchesTitleAndBrand", func(t *testing.T) {
		got := catalog.Suggest(ps, "phone", 8)
		assert.Len(t, got, 2)

		got = catalog.Suggest(ps, "aural", 8)
		require.Len(t, got, 1)
		assert.Equal(t, "p-005", got[0].ID)
	})

	t.Run("Limit", func(t *testing.T) {
		got := catalog.Suggest(ps, "p", 2)
		assert.Len(t, got, 2)
	})
}

func TestBrands(t *testing.T) {
	got := catalog.Brands(testProducts())
	assert.Equal(t, []string{"Aural", "Nimbus", "Vertex"}, got)
}
