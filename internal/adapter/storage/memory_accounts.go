package storage

import (
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
)

type MemoryAccounts struct {
	mu       sync.RWMutex
	accounts []*domain.Account
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{}
}

func (m *MemoryAccounts) Add(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, account)
}

func (m *MemoryAccounts) FindByUsername(username string) (*domain.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return nil, false
}

func (m *MemoryAccounts) List() []*domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Account, len(m.accounts))
	copy(out, m.accounts)
	return out
}
