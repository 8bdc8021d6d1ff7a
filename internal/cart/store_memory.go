package cart

import (
	"context"
	"sync"

	"github.com/salonyai/storefront/internal/domain"
)

// MemoryStore is an in-process cart store for development and tests.
type MemoryStore struct {
	mu        sync.Mutex
	carts     map[string][]byte
	languages map[string]domain.LanguageCode
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:     make(map[string][]byte),
		languages: make(map[string]domain.LanguageCode),
	}
}

func (s *MemoryStore) GetCart(ctx context.Context, slug, sessionID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.carts[slug+":"+sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, slug, sessionID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.carts[slug+":"+sessionID] = stored
	return nil
}

func (s *MemoryStore) DeleteCart(ctx context.Context, slug, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, slug+":"+sessionID)
	return nil
}

func (s *MemoryStore) GetLanguage(ctx context.Context, sessionID string) (domain.LanguageCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.languages[sessionID], nil
}

func (s *MemoryStore) SetLanguage(ctx context.Context, sessionID string, lang domain.LanguageCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages[sessionID] = lang
	return nil
}
