package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var (
	ErrAccountRequired = errors.New("account required")
	ErrUnknownAccount  = errors.New("unknown account")
)

type Store struct {
	mu       sync.Mutex
	catalog  port.CatalogRepository
	accounts port.AccountRepository
	log      *slog.Logger
}

func NewStore(catalog port.CatalogRepository, accounts port.AccountRepository, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		catalog:  catalog,
		accounts: accounts,
		log:      log,
	}
}

func (s *Store) AddProduct(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Add(product)
	s.log.Debug("product added", "title", product.Title, "price", product.Price, "category", product.Category)
}

func (s *Store) AddAccount(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts.Add(account)
	s.log.Debug("account registered", "account_id", account.ID, "username", account.Username)
}

// Catalog exposes the read-only query side of the catalog.
func (s *Store) Catalog() port.Searchable {
	return s.catalog
}

func (s *Store) Products() []domain.Product {
	return s.catalog.List()
}

// Accounts returns the registered accounts in registration order.
func (s *Store) Accounts() []*domain.Account {
	return s.accounts.List()
}

// History returns account's orders, oldest first. It holds the same lock as
// Purchase so a read never overlaps an append.
func (s *Store) History(account *domain.Account) []domain.Order {
	if account == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return account.History()
}

func (s *Store) FindAccount(username string) (*domain.Account, error) {
	account, ok := s.accounts.FindByUsername(username)
	if !ok {
		return nil, ErrUnknownAccount
	}
	return account, nil
}

// SelectProducts resolves catalog indices to products in the given order.
// Out-of-range indices are dropped; repeats are kept.
func (s *Store) SelectProducts(indices []int) []domain.Product {
	selected := make([]domain.Product, 0, len(indices))
	for _, idx := range indices {
		if p, ok := s.catalog.Get(idx); ok {
			selected = append(selected, p)
		}
	}
	return selected
}

// Purchase creates an order from selected and records it on account.
// An empty selection still produces an order with a zero total.
func (s *Store) Purchase(ctx context.Context, account *domain.Account, selected []domain.Product) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}
	if account == nil {
		return domain.Order{}, ErrAccountRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := domain.NewOrder(selected)
	account.RecordOrder(order)

	s.log.Info("order placed",
		"order_id", order.ID,
		"account_id", account.ID,
		"items", order.ItemCount(),
		"total", order.TotalPrice,
	)

	return order, nil
}
