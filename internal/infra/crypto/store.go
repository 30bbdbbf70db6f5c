package crypto

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
)

// valuePrefix marks an encrypted value. Values without it are read as plaintext,
// so encryption can be turned on for an existing store.
const valuePrefix = "enc:v1:"

// Store wraps a KeyValueStore and encrypts every value it writes.
type Store struct {
	inner domain.KeyValueStore
	enc   *Encryptor
}

// NewStore returns a store that encrypts values before passing them to inner.
func NewStore(inner domain.KeyValueStore, enc *Encryptor) *Store {
	return &Store{inner: inner, enc: enc}
}

// Get returns the decrypted value for key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	raw, found, err := s.inner.Get(ctx, key)
	if err != nil || !found {
		return raw, found, err
	}

	encoded, ok := strings.CutPrefix(raw, valuePrefix)
	if !ok {
		return raw, true, nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false, fmt.Errorf("decode %s: %w", key, domain.ErrDecryptionFailed)
	}
	plaintext, err := s.enc.Decrypt(ciphertext)
	if err != nil {
		return "", false, fmt.Errorf("decrypt %s: %w", key, err)
	}
	return string(plaintext), true, nil
}

// Set encrypts value and stores it under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	ciphertext, err := s.enc.Encrypt([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, valuePrefix+base64.StdEncoding.EncodeToString(ciphertext))
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

// Close closes the wrapped store.
func (s *Store) Close() error {
	return s.inner.Close()
}

var _ domain.KeyValueStore = (*Store)(nil)
