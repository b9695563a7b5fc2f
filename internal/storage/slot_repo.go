package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MainSlotKey is the slot the game state lives in unless configured otherwise.
const MainSlotKey = "ecoHabitGameState"

type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Read returns the slot, or nil when it has never been written.
func (r *SlotRepo) Read(ctx context.Context, key string) (*Slot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, prev_value, updated_at FROM slots WHERE key = ?`, key)

	var (
		s    Slot
		prev sql.NullString
	)
	if err := row.Scan(&s.Key, &s.Value, &prev, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("slot read: %w", err)
	}
	if prev.Valid {
		s.PrevValue = []byte(prev.String)
	}
	return &s, nil
}

// Write replaces the slot value. The old value moves to prev_value.
func (r *SlotRepo) Write(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			prev_value = slots.value,
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("slot write: %w", err)
	}
	return nil
}

func (r *SlotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("slot delete: %w", err)
	}
	return nil
}
