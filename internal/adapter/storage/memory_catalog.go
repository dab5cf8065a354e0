package storage

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rl1809/storefront/internal/core/domain"
)

// MemoryCatalog keeps products in an immutable snapshot that is replaced on
// every Add. Readers never lock.
type MemoryCatalog struct {
	mu       sync.Mutex // serializes writers
	products atomic.Pointer[[]domain.Product]
}

func NewMemoryCatalog(products ...domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{}
	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)
	c.products.Store(&snapshot)
	return c
}

func (c *MemoryCatalog) Add(product domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.snapshot()
	next := make([]domain.Product, len(current), len(current)+1)
	copy(next, current)
	next = append(next, product)
	c.products.Store(&next)
}

func (c *MemoryCatalog) List() []domain.Product {
	current := c.snapshot()
	out := make([]domain.Product, len(current))
	copy(out, current)
	return out
}

func (c *MemoryCatalog) Get(index int) (domain.Product, bool) {
	current := c.snapshot()
	if index < 0 || index >= len(current) {
		return domain.Product{}, false
	}
	return current[index], true
}

func (c *MemoryCatalog) Len() int {
	return len(c.snapshot())
}

func (c *MemoryCatalog) SearchByPriceRange(min, max float64) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Price >= min && p.Price <= max
	})
}

func (c *MemoryCatalog) SearchByCategory(category string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (c *MemoryCatalog) SearchByMinRating(min float64) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Rating >= min
	})
}

func (c *MemoryCatalog) filter(match func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, p := range c.snapshot() {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *MemoryCatalog) snapshot() []domain.Product {
	if p := c.products.Load(); p != nil {
		return *p
	}
	return nil
}
