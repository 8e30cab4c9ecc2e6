package store

import "wallet-registry/internal/model"

// MemoryStore is an in-process WalletStore. It exists so the manager can
// be exercised without touching disk.
type MemoryStore struct {
	collections map[model.Chain][]model.WalletRecord

	// SaveErr, when set, is returned by every Save. Lets tests reproduce
	// a wallet-file write failure.
	SaveErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[model.Chain][]model.WalletRecord)}
}

// Load returns a copy of the chain's collection.
func (s *MemoryStore) Load(chain model.Chain) ([]model.WalletRecord, error) {
	records := s.collections[chain]
	out := make([]model.WalletRecord, len(records))
	copy(out, records)
	return out, nil
}

// Save replaces the chain's collection with a copy of records.
func (s *MemoryStore) Save(chain model.Chain, records []model.WalletRecord) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	stored := make([]model.WalletRecord, len(records))
	copy(stored, records)
	s.collections[chain] = stored
	return nil
}
