package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/logging"
)

// FontCacheRepo is a SQLite-backed scan cache. Only one scan (the current
// fingerprint) is kept at a time; storing a new fingerprint replaces the
// previous scan entirely.
type FontCacheRepo struct {
	db *sql.DB
}

// NewFontCacheRepo creates a new font scan cache repository.
func NewFontCacheRepo(db *sql.DB) *FontCacheRepo {
	return &FontCacheRepo{db: db}
}

// Load returns the cached registry for the fingerprint, or ok=false when the
// fingerprint is unknown (cache miss or stale).
func (r *FontCacheRepo) Load(ctx context.Context, fingerprint string) (entity.Registry, bool, error) {
	log := logging.FromContext(ctx)

	var found string
	err := r.db.QueryRowContext(ctx,
		"SELECT fingerprint FROM font_scans WHERE fingerprint = ?", fingerprint,
	).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query font scan: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT family, path FROM font_faces WHERE fingerprint = ?", fingerprint,
	)
	if err != nil {
		return nil, false, fmt.Errorf("query font faces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	registry := make(entity.Registry)
	for rows.Next() {
		var family, path string
		if err := rows.Scan(&family, &path); err != nil {
			return nil, false, fmt.Errorf("scan font face row: %w", err)
		}
		registry[family] = path
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate font faces: %w", err)
	}

	log.Debug().Str("fingerprint", fingerprint).Int("count", len(registry)).Msg("font cache hit")
	return registry, true, nil
}

// Store replaces the cached scan with the given registry.
func (r *FontCacheRepo) Store(ctx context.Context, fingerprint string, registry entity.Registry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache store: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM font_scans"); err != nil {
		return fmt.Errorf("clear previous scan: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO font_scans (fingerprint) VALUES (?)", fingerprint,
	); err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO font_faces (fingerprint, family, path) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare face insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for family, path := range registry {
		if _, err := stmt.ExecContext(ctx, fingerprint, family, path); err != nil {
			return fmt.Errorf("insert face %q: %w", family, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache store: %w", err)
	}
	return nil
}
