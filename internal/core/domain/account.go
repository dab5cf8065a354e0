package domain

import "github.com/google/uuid"

type Account struct {
	ID         string
	Username   string
	Credential string // stored as given, never checked

	history []Order
}

func NewAccount(username, credential string) *Account {
	return &Account{
		ID:         uuid.NewString(),
		Username:   username,
		Credential: credential,
	}
}

// RecordOrder appends order to the history. The history is append-only.
func (a *Account) RecordOrder(order Order) {
	a.history = append(a.history, order)
}

// History returns the recorded orders, oldest first.
func (a *Account) History() []Order {
	out := make([]Order, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) OrderCount() int {
	return len(a.history)
}
