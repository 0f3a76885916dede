package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	cat := Default()
	require.NotNil(t, cat)
	require.Equal(t, 6, cat.Len())

	p, ok := cat.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Neon Dreams", p.Title)
	assert.True(t, decimal.NewFromInt(299).Equal(p.Price))
	assert.Equal(t, "Mara Vey", p.Artist)

	for _, id := range []int{2, 3} {
		_, ok := cat.Get(id)
		assert.True(t, ok, "product %d", id)
	}
}

func TestDefaultCatalogIsShared(t *testing.T) {
	t.Parallel()
	require.Same(t, Default(), Default())
}

func TestGetUnknownProduct(t *testing.T) {
	t.Parallel()

	_, ok := Default().Get(999)
	require.False(t, ok)

	var nilCatalog *Catalog
	_, ok = nilCatalog.Get(1)
	require.False(t, ok)
	require.Zero(t, nilCatalog.Len())
}

func TestProductsReturnsCopy(t *testing.T) {
	t.Parallel()

	cat := Default()
	products := cat.Products()
	products[0].Title = "changed"

	p, _ := cat.Get(products[0].ID)
	require.NotEqual(t, "changed", p.Title)
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	cat := Default()
	featured := cat.Featured(3)
	require.Len(t, featured, 3)
	require.Equal(t, 1, featured[0].ID)
	require.Len(t, cat.Featured(100), cat.Len())
}

func TestReviewsFor(t *testing.T) {
	t.Parallel()

	cat := Default()
	reviews := cat.ReviewsFor(1)
	require.Len(t, reviews, 1)
	require.Equal(t, "Sarah J.", reviews[0].Author)
	require.Empty(t, cat.ReviewsFor(6))
	require.Len(t, cat.Reviews(), 4)
}

func TestReviewStars(t *testing.T) {
	t.Parallel()

	r := Review{Rating: 3}
	require.Equal(t, "***..", r.Stars("*", "."))
}

func TestProductString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Neon Dreams by Mara Vey", Product{Title: "Neon Dreams", Artist: "Mara Vey"}.String())
	require.Equal(t, "Untitled", Product{Title: "Untitled"}.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		contents  string
		wantField string
		assert    func(t *testing.T, cat *Catalog, err error)
	}{
		{
			name: "valid document",
			contents: `products:
  - id: 10
    title: Test Piece
    price: "12.50"
    image: https://cdn.example.com/test.jpg
    artist: Tester
reviews:
  - author: A
    rating: 5
    text: great
    product_id: 10
`,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.NoError(t, err)
				p, ok := cat.Get(10)
				require.True(t, ok)
				require.Equal(t, "12.5", p.Price.String())
				require.Len(t, cat.ReviewsFor(10), 1)
			},
		},
		{
			name:      "empty products",
			contents:  "products: []\n",
			wantField: "products",
		},
		{
			name: "duplicate id",
			contents: `products:
  - {id: 1, title: A, price: "1", image: /a.jpg, artist: X}
  - {id: 1, title: B, price: "2", image: /b.jpg, artist: X}
`,
			wantField: "products[1].id",
		},
		{
			name: "negative price",
			contents: `products:
  - {id: 1, title: A, price: "-5", image: /a.jpg, artist: X}
`,
			wantField: "products[0].price",
		},
		{
			name: "unparseable price",
			contents: `products:
  - {id: 1, title: A, price: "cheap", image: /a.jpg, artist: X}
`,
			wantField: "products[0].price",
		},
		{
			name: "bad image",
			contents: `products:
  - {id: 1, title: A, price: "1", image: "ftp://x/a.jpg", artist: X}
`,
			wantField: "products[0].image",
		},
		{
			name: "review out of range",
			contents: `products:
  - {id: 1, title: A, price: "1", image: /a.jpg, artist: X}
reviews:
  - {author: B, rating: 6, text: wow}
`,
			wantField: "reviews[0].rating",
		},
		{
			name: "review for unknown product",
			contents: `products:
  - {id: 1, title: A, price: "1", image: /a.jpg, artist: X}
reviews:
  - {author: B, rating: 4, text: ok, product_id: 9}
`,
			wantField: "reviews[0].product_id",
		},
		{
			name:     "malformed yaml",
			contents: "products:\n  - id: [1\n",
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Nil(t, cat)
				var parseErr *twistederrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "inline", parseErr.Path)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cat, err := Parse([]byte(tc.contents), "inline")
			if tc.assert != nil {
				tc.assert(t, cat, err)
				return
			}

			require.Nil(t, cat)
			var ve *twistederrors.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`products:
  - {id: 7, title: Solo, price: "42", image: /solo.jpg, artist: Y}
`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var parseErr *twistederrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, filepath.Join(dir, "missing.yaml"), parseErr.Path)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("products:\n\t- id: 1\n"), "inline")
	var parseErr *twistederrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)
}
