// Package manager implements the wallet registry: keypair generation up
// to a target collection size, whole-collection persistence and
// best-effort balance reporting.
package manager

import (
	"context"

	"wallet-registry/internal/apperr"
	"wallet-registry/internal/chain"
	"wallet-registry/internal/model"
	"wallet-registry/internal/store"

	"go.uber.org/zap"
)

// Manager coordinates one chain's backend and wallet store. It is bound
// to a single chain at construction; operations requesting another chain
// fail validation.
type Manager struct {
	chain   model.Chain
	backend chain.Backend
	store   store.WalletStore
	log     *zap.Logger
}

// New creates a manager for the backend's chain.
func New(backend chain.Backend, st store.WalletStore, log *zap.Logger) *Manager {
	return &Manager{
		chain:   backend.Chain(),
		backend: backend,
		store:   st,
		log:     log,
	}
}

func (m *Manager) validate(op string, count int, requested model.Chain) error {
	if count < 0 {
		return apperr.New(apperr.CodeValidation, op,
			"wallet count must be non-negative, got %d", count)
	}
	if requested != m.chain {
		return apperr.New(apperr.CodeValidation, op,
			"manager network (%s) does not match requested chain (%s)", m.chain, requested)
	}
	return nil
}

// Generate creates count new keypairs, appends them to the persisted
// collection and returns only the new records. When the save fails, the
// new records are still returned alongside the IO error: they exist in
// memory but their durability is not guaranteed.
func (m *Manager) Generate(ctx context.Context, count int, requested model.Chain) ([]model.WalletRecord, error) {
	if err := m.validate("manager.Generate", count, requested); err != nil {
		return nil, err
	}

	records, err := m.store.Load(m.chain)
	if err != nil {
		return nil, err
	}

	created := make([]model.WalletRecord, 0, count)
	for i := 0; i < count; i++ {
		record, err := m.backend.GenerateKeypair(ctx)
		if err != nil {
			return nil, err
		}
		created = append(created, record)
	}
	if len(created) == 0 {
		return created, nil
	}

	if err := m.store.Save(m.chain, append(records, created...)); err != nil {
		return created, err
	}

	m.log.Info("generated wallets",
		zap.Int("count", len(created)),
		zap.String("chain", m.chain.String()))
	return created, nil
}

// EnsureCount converges the collection to at least requested records and
// returns the first requested of them. A target at or below the current
// size is a read, never a deletion; a larger target generates the
// shortfall. Idempotent for any fixed target.
func (m *Manager) EnsureCount(ctx context.Context, requested int, chain model.Chain) ([]model.WalletRecord, error) {
	if err := m.validate("manager.EnsureCount", requested, chain); err != nil {
		return nil, err
	}

	records, err := m.store.Load(m.chain)
	if err != nil {
		return nil, err
	}

	if requested <= len(records) {
		return records[:requested], nil
	}

	created, err := m.Generate(ctx, requested-len(records), chain)
	if created == nil {
		return nil, err
	}
	// Save failures carry the in-memory result, same as Generate.
	return append(records, created...), err
}

// Balance reports the native-asset balance of an address. Query failures
// are never escalated: the result is zero with Failed set and a warning
// logged, so callers can still tell a zero balance from a failed lookup.
func (m *Manager) Balance(ctx context.Context, address string, chain model.Chain) model.Balance {
	unit := m.backend.Unit()
	if chain != m.chain {
		m.log.Warn("balance requested for another chain",
			zap.String("manager", m.chain.String()),
			zap.String("requested", chain.String()))
		return model.Balance{Unit: unit, Failed: true}
	}

	amount, err := m.backend.Balance(ctx, address)
	if err != nil {
		m.log.Warn("failed to get balance",
			zap.String("address", address),
			zap.Error(err))
		return model.Balance{Unit: unit, Failed: true}
	}
	return model.Balance{Amount: amount, Unit: unit}
}
