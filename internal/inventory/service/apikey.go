package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/cryptox"
	"github.com/stackledger/stackledger/pkg/idx"
)

// ErrInvalidAPIKey is returned when a presented key matches no active record.
var ErrInvalidAPIKey = errors.New("service: invalid api key")

// OpenAccessKeyID is recorded as the caller when no API keys are provisioned
// at all and writes are allowed through for bootstrapping.
const OpenAccessKeyID = "open-access"

type APIKeyService struct {
	Store store.Store

	// DevKey, when non-empty, is accepted as a valid key without a database
	// lookup. Only set outside production.
	DevKey string
}

// Mint creates a new API key and returns the plaintext exactly once. Only the
// bcrypt hash is persisted.
func (s *APIKeyService) Mint(ctx context.Context, name string) (domain.APIKey, string, error) {
	if name == "" {
		return domain.APIKey{}, "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	plaintext, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.APIKey{}, "", fmt.Errorf("generate key: %w", err)
	}
	hash, err := cryptox.HashAPIKey(plaintext)
	if err != nil {
		return domain.APIKey{}, "", fmt.Errorf("hash key: %w", err)
	}

	k := domain.APIKey{
		ID:      idx.New().String(),
		Name:    name,
		KeyHash: hash,
		Active:  true,
	}
	if err := s.Store.APIKeys().CreateAPIKey(ctx, k); err != nil {
		return domain.APIKey{}, "", err
	}
	return k, plaintext, nil
}

// Verify checks a presented plaintext key against all active keys and returns
// the matching record's id. bcrypt comparison is constant time per candidate.
func (s *APIKeyService) Verify(ctx context.Context, plaintext string) (string, error) {
	if s.DevKey != "" && plaintext == s.DevKey {
		return "dev", nil
	}

	keys, err := s.Store.APIKeys().ListActiveAPIKeys(ctx)
	if err != nil {
		return "", err
	}
	if len(keys) == 0 && s.DevKey == "" {
		// Nothing provisioned yet. A fresh install stays writable so the
		// first key can be minted through the API.
		return OpenAccessKeyID, nil
	}
	if plaintext == "" {
		return "", ErrInvalidAPIKey
	}
	for _, k := range keys {
		if cryptox.VerifyAPIKey(plaintext, k.KeyHash) {
			return k.ID, nil
		}
	}
	return "", ErrInvalidAPIKey
}

// Revoke deactivates a key. Existing sessions are unaffected; the key simply
// stops verifying.
func (s *APIKeyService) Revoke(ctx context.Context, id string) error {
	return s.Store.APIKeys().DeactivateAPIKey(ctx, id)
}
