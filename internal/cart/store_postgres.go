package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/domain"
)

// PostgresStore is the durable alternative to Redis, selected with
// CART_STORE=postgres. Expected schema:
//
//	CREATE TABLE storefront_carts (
//	    session_id TEXT NOT NULL,
//	    slug       TEXT NOT NULL,
//	    items      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (session_id, slug)
//	);
//
//	CREATE TABLE storefront_sessions (
//	    session_id    TEXT PRIMARY KEY,
//	    language_code INT NOT NULL,
//	    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewConnection creates a new PostgreSQL database connection
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewPostgresStore creates a Postgres-backed cart store
func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger,
	}
}

func (s *PostgresStore) GetCart(ctx context.Context, slug, sessionID string) ([]byte, error) {
	query := `
		SELECT items
		FROM storefront_carts
		WHERE session_id = $1 AND slug = $2
	`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, sessionID, slug).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to query cart", zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *PostgresStore) SaveCart(ctx context.Context, slug, sessionID string, data []byte) error {
	query := `
		INSERT INTO storefront_carts (session_id, slug, items, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, slug)
		DO UPDATE SET items = EXCLUDED.items, updated_at = now()
	`

	if _, err := s.db.ExecContext(ctx, query, sessionID, slug, data); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return err
	}
	return nil
}

func (s *PostgresStore) DeleteCart(ctx context.Context, slug, sessionID string) error {
	query := `
		DELETE FROM storefront_carts
		WHERE session_id = $1 AND slug = $2
	`

	if _, err := s.db.ExecContext(ctx, query, sessionID, slug); err != nil {
		s.logger.Error("Failed to delete cart", zap.Error(err))
		return err
	}
	return nil
}

func (s *PostgresStore) GetLanguage(ctx context.Context, sessionID string) (domain.LanguageCode, error) {
	query := `
		SELECT language_code
		FROM storefront_sessions
		WHERE session_id = $1
	`

	var code int
	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(&code)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		s.logger.Error("Failed to query session language", zap.Error(err))
		return 0, err
	}
	return domain.LanguageCode(code), nil
}

func (s *PostgresStore) SetLanguage(ctx context.Context, sessionID string, lang domain.LanguageCode) error {
	query := `
		INSERT INTO storefront_sessions (session_id, language_code, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id)
		DO UPDATE SET language_code = EXCLUDED.language_code, updated_at = now()
	`

	if _, err := s.db.ExecContext(ctx, query, sessionID, int(lang)); err != nil {
		s.logger.Error("Failed to save session language", zap.Error(err))
		return err
	}
	return nil
}
