package port

import "github.com/rl1809/storefront/internal/core/domain"

// Searchable is the query capability of a catalog. Results keep catalog order.
type Searchable interface {
	// SearchByPriceRange returns products with min <= price <= max
	SearchByPriceRange(min, max float64) []domain.Product

	// SearchByCategory matches the category exactly, ignoring case
	SearchByCategory(category string) []domain.Product

	// SearchByMinRating returns products rated at least min
	SearchByMinRating(min float64) []domain.Product
}

type CatalogRepository interface {
	Searchable

	// Add appends a product; the catalog is append-only
	Add(product domain.Product)

	// List returns every product in insertion order
	List() []domain.Product

	// Get returns the product at index, false when out of range
	Get(index int) (domain.Product, bool)

	Len() int
}
