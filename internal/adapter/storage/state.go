package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
)

var _ port.StateStore = (*StateRepository)(nil)

const (
	cartKey    = "cart"
	sessionKey = "session"
)

// StateRepository persists whole-entity JSON snapshots, one row per entity,
// mirroring the two independent key-value entries the storefront relies on.
// Missing or corrupt snapshots load as empty/absent, never as an error.
type StateRepository struct {
	sqldb sqldb
}

func NewStateRepository(sqldb sqldb) StateRepository {
	return StateRepository{sqldb}
}

func (r StateRepository) SaveCart(ctx context.Context, c domain.Cart) error {
	const op = "StateRepository.SaveCart"

	if err := r.save(ctx, cartKey, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) LoadCart(ctx context.Context) (domain.Cart, error) {
	const op = "StateRepository.LoadCart"

	data, err := r.load(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return decodeCart(data), nil
}

func (r StateRepository) SaveSession(
	ctx context.Context, s *domain.Session,
) error {
	const op = "StateRepository.SaveSession"

	if err := r.save(ctx, sessionKey, s); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) LoadSession(
	ctx context.Context,
) (*domain.Session, error) {
	const op = "StateRepository.LoadSession"

	data, err := r.load(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return decodeSession(data), nil
}

func (r StateRepository) save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO state_snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	_, err = r.sqldb.ExecContext(ctx, query, key, string(data))
	return err
}

// load returns nil data for a missing key.
func (r StateRepository) load(
	ctx context.Context, key string,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := `SELECT value FROM state_snapshots WHERE key = $1;`

	var raw string
	err := r.sqldb.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(raw), nil
}

// decodeCart treats corrupt snapshots as an empty cart and drops any entry
// that slipped in with a non-positive quantity.
func decodeCart(data []byte) domain.Cart {
	const op = "decodeCart"

	if len(data) == 0 {
		return domain.Cart{}
	}

	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		slog.With("op", op).Warn("corrupt cart snapshot, using empty", "err", err)
		return domain.Cart{}
	}
	if c == nil {
		return domain.Cart{}
	}

	for id, qty := range c {
		if qty <= 0 {
			delete(c, id)
		}
	}
	return c
}

// decodeSession treats corrupt snapshots and JSON null as logged out.
func decodeSession(data []byte) *domain.Session {
	const op = "decodeSession"

	if len(data) == 0 {
		return nil
	}

	var s *domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		slog.With("op", op).Warn(
			"corrupt session snapshot, treating as logged out", "err", err,
		)
		return nil
	}
	return s
}
