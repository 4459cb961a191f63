package gamestate

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

const createGameStatesTable = `
CREATE TABLE IF NOT EXISTS game_states (
	id TEXT PRIMARY KEY,
	schema_version INTEGER NOT NULL,
	state_json TEXT NOT NULL,
	saved_at TEXT NOT NULL
);`

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps everything in memory
	Path  string
	Clock clock.Clock
}

// Validate ensures all required values are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// SQLiteRepository stores one row per game with the state as a JSON column
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
	mu    sync.RWMutex
}

// NewSQLiteRepository opens the database and creates the table if needed
func NewSQLiteRepository(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open sqlite database %s", cfg.Path)
	}

	// one writer, and a single connection keeps ":memory:" databases alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(createGameStatesTable); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create game_states table")
	}

	slog.Debug("sqlite game state repository ready", "path", cfg.Path)
	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

// Close releases the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save upserts the game row
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	state := stamp(input.State, r.clock.Now())
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game %s", state.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO game_states (id, schema_version, state_json, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			state_json = excluded.state_json,
			saved_at = excluded.saved_at`

	_, err = r.db.ExecContext(ctx, query, state.ID, state.SchemaVersion, string(data), state.SavedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to upsert game %s", state.ID)
	}

	return &SaveOutput{State: state}, nil
}

// Get loads the game row
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT state_json FROM game_states WHERE id = ?`, input.ID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to query game %s", input.ID)
	}

	var state GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal game %s", input.ID)
	}
	if err := state.checkVersion(); err != nil {
		return nil, err
	}

	return &GetOutput{State: &state}, nil
}

// Delete removes the game row
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.db.ExecContext(ctx, `DELETE FROM game_states WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete game %s", input.ID)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("game %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
