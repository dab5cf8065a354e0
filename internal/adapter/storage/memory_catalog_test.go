package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var _ port.CatalogRepository = (*MemoryCatalog)(nil)

func titles(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestSearchByPriceRange_Seed(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	got := catalog.SearchByPriceRange(120, 180)

	// insertion order: 150, 120, 180
	require.Len(t, got, 3)
	assert.Equal(t, []float64{150, 120, 180}, []float64{got[0].Price, got[1].Price, got[2].Price})
}

func TestSearchByPriceRange_BoundsAreInclusive(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	for _, tc := range []struct {
		name     string
		min, max float64
	}{
		{"exact single", 150, 150},
		{"wide", 0, 1000},
		{"upper half", 160, 200},
		{"nothing", 201, 300},
		{"inverted", 200, 100},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.SearchByPriceRange(tc.min, tc.max)
			in := map[string]bool{}
			for _, p := range got {
				assert.GreaterOrEqual(t, p.Price, tc.min)
				assert.LessOrEqual(t, p.Price, tc.max)
				in[p.Title] = true
			}
			for _, p := range catalog.List() {
				if p.Price >= tc.min && p.Price <= tc.max {
					assert.True(t, in[p.Title], "missing %s", p.Title)
				}
			}
		})
	}
}

func TestSearch_EmptyCatalog(t *testing.T) {
	catalog := NewMemoryCatalog()

	assert.Empty(t, catalog.SearchByPriceRange(0, 1000))
	assert.Empty(t, catalog.SearchByCategory("Books"))
	assert.Empty(t, catalog.SearchByMinRating(0))
	assert.Zero(t, catalog.Len())
}

func TestSearchByCategory_IgnoresCase(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	lower := catalog.SearchByCategory("books")
	upper := catalog.SearchByCategory("BOOKS")

	assert.Equal(t, lower, upper)
	assert.Equal(t, []string{"Book 1", "Book 2"}, titles(lower))
}

func TestSearchByCategory_NoSubstringMatch(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	assert.Empty(t, catalog.SearchByCategory("Book"))
	assert.Empty(t, catalog.SearchByCategory(""))
}

func TestSearchByCategory_EmptyCategory(t *testing.T) {
	catalog := NewMemoryCatalog(
		domain.Product{Title: "Loose", Price: 1},
		domain.Product{Title: "Filed", Price: 2, Category: "Misc"},
	)

	assert.Equal(t, []string{"Loose"}, titles(catalog.SearchByCategory("")))
}

func TestSearchByMinRating(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	assert.Equal(t, catalog.List(), catalog.SearchByMinRating(0))
	assert.Empty(t, catalog.SearchByMinRating(5.1))
	assert.Equal(t, []string{"Book 1", "Book 2"}, titles(catalog.SearchByMinRating(4.5)))
}

func TestSearch_KeepsDuplicates(t *testing.T) {
	p := domain.Product{Title: "Twin", Price: 10, Category: "X", Rating: 3}
	catalog := NewMemoryCatalog(p, p)

	assert.Len(t, catalog.SearchByPriceRange(0, 10), 2)
	assert.Len(t, catalog.SearchByCategory("x"), 2)
	assert.Len(t, catalog.SearchByMinRating(3), 2)
}

func TestAddAndGet(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.Add(domain.Product{Title: "First", Price: 1})
	catalog.Add(domain.Product{Title: "Second", Price: 2})

	assert.Equal(t, 2, catalog.Len())

	p, ok := catalog.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Second", p.Title)

	_, ok = catalog.Get(2)
	assert.False(t, ok)
	_, ok = catalog.Get(-1)
	assert.False(t, ok)
}

func TestList_IsSnapshot(t *testing.T) {
	catalog := NewMemoryCatalog(DefaultProducts()...)

	before := catalog.List()
	before[0].Title = "changed"
	catalog.Add(domain.Product{Title: "Book 5", Price: 90})

	assert.Len(t, before, 4)
	first, _ := catalog.Get(0)
	assert.Equal(t, "Book 1", first.Title)
	assert.Equal(t, 5, catalog.Len())
}

func TestAdd_ConcurrentWithReads(t *testing.T) {
	catalog := NewMemoryCatalog()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			catalog.Add(domain.Product{Title: "P", Price: float64(i)})
		}(i)
		go func() {
			defer wg.Done()
			_ = catalog.SearchByPriceRange(0, writers)
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, catalog.Len())
}
