package console

import (
	"context"
	"sync"
)

var _ CredentialStore = (*MemoryCredentialStore)(nil)

// MemoryCredentialStore is an in-process CredentialStore for tests and
// ephemeral runs. Nothing survives a restart.
type MemoryCredentialStore struct {
	mu         sync.Mutex
	credential string
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Read returns the stored credential, empty when the slot is vacant.
func (s *MemoryCredentialStore) Read(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, nil
}

func (s *MemoryCredentialStore) Write(ctx context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	return nil
}

func (s *MemoryCredentialStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	return nil
}
