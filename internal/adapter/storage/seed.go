package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rl1809/storefront/internal/core/domain"
)

// SeedFile is the on-disk shape of a catalog seed:
//
//	products:
//	  - title: Book 1
//	    price: 150
//	    category: Books
//	    rating: 4.5
type SeedFile struct {
	Products []domain.Product `yaml:"products"`
}

// DefaultProducts is the catalog the store starts with when no seed file is given.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{Title: "Book 1", Price: 150, Description: "An interesting book about programming.", Category: "Books", Rating: 4.5},
		{Title: "Book 2", Price: 200, Description: "A book on the history of Ukraine.", Category: "Books", Rating: 4.7},
		{Title: "Book 3", Price: 120, Description: "A mathematics study guide.", Category: "Textbooks", Rating: 3.8},
		{Title: "Book 4", Price: 180, Description: "A novel for teenagers.", Category: "Novels", Rating: 4.2},
	}
}

// LoadSeedFile reads a YAML catalog seed from path.
func LoadSeedFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]domain.Product, error) {
	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	for i, p := range sf.Products {
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d (%q): negative price %v", i, p.Title, p.Price)
		}
	}

	return sf.Products, nil
}
