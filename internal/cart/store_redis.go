package cart

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/domain"
)

// Key layout:
//
//	cart:{slug}:{session} -> JSON array of CartLineItem
//	lang:{session}        -> integer language code
const (
	keyCart     = "cart:%s:%s"
	keyLanguage = "lang:%s"
)

// Carts and language picks outlive page visits but not forever; idle
// sessions expire server-side.
var (
	TTLCart     = 30 * 24 * time.Hour
	TTLLanguage = 30 * 24 * time.Hour
)

// RedisStore keeps carts in Redis, the server-side analog of the browser's
// slug-namespaced localStorage.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) GetCart(ctx context.Context, slug, sessionID string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, fmt.Sprintf(keyCart, slug, sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	return data, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, slug, sessionID string, data []byte) error {
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyCart, slug, sessionID), data, TTLCart).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteCart(ctx context.Context, slug, sessionID string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyCart, slug, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func (s *RedisStore) GetLanguage(ctx context.Context, sessionID string) (domain.LanguageCode, error) {
	val, err := s.rdb.Get(ctx, fmt.Sprintf(keyLanguage, sessionID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read language: %w", err)
	}
	code, err := strconv.Atoi(val)
	if err != nil {
		// Unparseable value counts as unset.
		return 0, nil
	}
	return domain.LanguageCode(code), nil
}

func (s *RedisStore) SetLanguage(ctx context.Context, sessionID string, lang domain.LanguageCode) error {
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyLanguage, sessionID), strconv.Itoa(int(lang)), TTLLanguage).Err(); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}

// Ping verifies connectivity at startup
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
