package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecnostore/storefront/internal/adapter/catalogfile"
)

const catalogJSON = `[
  {
    "id": "p-001",
    "title": "Laptop Pro 15",
    "description": "Thin and fast",
    "brand": "Nimbus",
    "category": "laptops",
    "price": 4500,
    "previous_price": 5000,
    "stock": 3,
    "rating": 4.7,
    "tags": ["new", "top"],
    "specifications": {"cpu": "8 cores"},
    "images": ["https://img.example/p-001.jpg"]
  },
  {
    "id": "p-002",
    "title": "Headset Go",
    "brand": "Aural",
    "category": "audio",
    "price": 300,
    "stock": 0,
    "rating": 4.9
  }
]`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCatalog(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		f := catalogfile.New(writeFile(t, catalogJSON))

		ps, err := f.ReadCatalog(t.Context())
		require.NoError(t, err)
		require.Len(t, ps, 2)

		first := ps[0]
		assert.Equal(t, "p-001", first.ID)
		assert.Equal(t, "Laptop Pro 15", first.Title)
		assert.Equal(t, int64(4500), first.Price)
		assert.Equal(t, int64(5000), first.PreviousPrice)
		assert.True(t, first.Discounted())
		assert.Equal(t, map[string]string{"cpu": "8 cores"}, first.Specifications)

		second := ps[1]
		assert.Zero(t, second.PreviousPrice)
		assert.Empty(t, second.Images)
	})

	t.Run("MissingFile", func(t *testing.T) {
		f := catalogfile.New(filepath.Join(t.TempDir(), "absent.json"))
		_, err := f.ReadCatalog(t.Context())
		assert.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		f := catalogfile.New(writeFile(t, "{not json"))
		_, err := f.ReadCatalog(t.Context())
		assert.Error(t, err)
	})
}
