package store

import (
	"encoding/json"
	"fmt"
	"os"

	"wallet-registry/internal/apperr"
	"wallet-registry/internal/model"

	"go.uber.org/zap"
)

// FileStore keeps one JSON wallet file per chain. The file is a JSON
// array of wallet records in creation order, indented for human
// readability. Private keys are stored in plaintext.
type FileStore struct {
	paths map[model.Chain]string
	log   *zap.Logger
}

// NewFileStore creates a file store over the given chain-to-path map.
func NewFileStore(paths map[model.Chain]string, log *zap.Logger) *FileStore {
	// Said out loud once so nobody mistakes the file format for a keystore.
	log.Warn("wallet files store private keys in plaintext JSON with no encryption or access control")
	return &FileStore{paths: paths, log: log}
}

func (s *FileStore) path(chain model.Chain) (string, error) {
	path, ok := s.paths[chain]
	if !ok {
		return "", apperr.New(apperr.CodeConfiguration, "store.path",
			"no wallet file configured for chain %q", chain)
	}
	return path, nil
}

// Load reads the wallet collection for a chain. A missing file is an
// empty collection; so is a corrupt one, after a warning. Corruption is
// accepted data loss, not recovered.
func (s *FileStore) Load(chain model.Chain) ([]model.WalletRecord, error) {
	path, err := s.path(chain)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.WalletRecord{}, nil
		}
		return nil, apperr.Wrap(apperr.CodeIO, "store.Load",
			fmt.Errorf("failed to read %s: %w", path, err))
	}

	var records []model.WalletRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("wallet file is corrupt, starting from an empty collection",
			zap.String("path", path),
			zap.Error(err))
		return []model.WalletRecord{}, nil
	}
	return records, nil
}

// Save rewrites the wallet collection for a chain.
func (s *FileStore) Save(chain model.Chain, records []model.WalletRecord) error {
	path, err := s.path(chain)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return apperr.Wrap(apperr.CodeIO, "store.Save", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return apperr.Wrap(apperr.CodeIO, "store.Save",
			fmt.Errorf("failed to write %s: %w", path, err))
	}
	return nil
}
