// Package store persists wallet collections. The canonical implementation
// writes one JSON file per chain; MemoryStore is an in-process double for
// tests and tooling.
package store

import "wallet-registry/internal/model"

// WalletStore loads and saves the full wallet collection of a chain.
// Collections are ordered by creation; Save rewrites the whole collection.
type WalletStore interface {
	Load(chain model.Chain) ([]model.WalletRecord, error)
	Save(chain model.Chain, records []model.WalletRecord) error
}
