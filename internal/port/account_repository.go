package port

import "github.com/rl1809/storefront/internal/core/domain"

type AccountRepository interface {
	// Add registers an account without duplicate checking
	Add(account *domain.Account)

	// FindByUsername returns the first registered account with that username
	FindByUsername(username string) (*domain.Account, bool)

	List() []*domain.Account
}
