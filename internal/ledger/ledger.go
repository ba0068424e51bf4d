// Package ledger provides the in-memory existing-transactions store used
// for tests and standalone runs. Production deployments satisfy the same
// lookup interface from the relational store.
package ledger

import (
	"sync"

	"github.com/ledgerflow/statement-engine/internal/models"
)

// InMemory is a threadsafe per-account transaction store.
type InMemory struct {
	mu       sync.RWMutex
	accounts map[string][]models.ExistingTransaction
}

// NewInMemory returns an empty store.
func NewInMemory() *InMemory {
	return &InMemory{accounts: make(map[string][]models.ExistingTransaction)}
}

// Add records transactions against an account.
func (s *InMemory) Add(accountID string, txns ...models.ExistingTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[accountID] = append(s.accounts[accountID], txns...)
}

// ExistingTransactions returns a copy of the transactions recorded against
// an account.
func (s *InMemory) ExistingTransactions(accountID string) ([]models.ExistingTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := s.accounts[accountID]
	out := make([]models.ExistingTransaction, len(txns))
	copy(out, txns)
	return out, nil
}
