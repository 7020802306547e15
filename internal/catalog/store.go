// Package catalog loads the hotspot list the map is built from: a JSON
// records file, a SQLite catalog, or the built-in itinerary.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/playperu/trailmap/internal/trailmap"
)

var ErrNotFound = errors.New("not found")

const radiusKey = "radius"

// Store reads and writes hotspots in the catalog database. Rows are kept in
// configured order by their position column.
type Store struct {
	db *sql.DB
}

// NewStore wraps a database that already has the catalog schema applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotspots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting hotspots: %w", err)
	}
	return n, nil
}

// Hotspots returns every hotspot ordered by position.
func (s *Store) Hotspots(ctx context.Context) ([]trailmap.Hotspot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, x, y, text FROM hotspots ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying hotspots: %w", err)
	}
	defer rows.Close()

	var out []trailmap.Hotspot
	for rows.Next() {
		var h trailmap.Hotspot
		if err := rows.Scan(&h.Name, &h.Center.X, &h.Center.Y, &h.Text); err != nil {
			return nil, fmt.Errorf("scanning hotspot: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Radius returns the stored hotspot radius, or ErrNotFound if none is set.
func (s *Store) Radius(ctx context.Context) (int, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM map_settings WHERE key = ?`, radiusKey,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("reading radius: %w", err)
	}
	r, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing radius %q: %w", v, err)
	}
	return r, nil
}

// Replace swaps the whole catalog for hs and radius in one transaction.
func (s *Store) Replace(ctx context.Context, hs []trailmap.Hotspot, radius int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hotspots`); err != nil {
		return fmt.Errorf("clearing hotspots: %w", err)
	}
	for i, h := range hs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO hotspots (position, name, x, y, text) VALUES (?, ?, ?, ?, ?)`,
			i, h.Name, h.Center.X, h.Center.Y, h.Text,
		); err != nil {
			return fmt.Errorf("inserting hotspot %q: %w", h.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO map_settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		radiusKey, strconv.Itoa(radius),
	); err != nil {
		return fmt.Errorf("storing radius: %w", err)
	}

	return tx.Commit()
}

// Seed fills an empty catalog. It does nothing if hotspots already exist
// and reports whether it wrote anything.
func (s *Store) Seed(ctx context.Context, hs []trailmap.Hotspot, radius int) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.Replace(ctx, hs, radius); err != nil {
		return false, err
	}
	return true, nil
}

// Map builds the trailmap.Map from the stored catalog. A missing radius
// falls back to fallbackRadius.
func (s *Store) Map(ctx context.Context, fallbackRadius int) (*trailmap.Map, error) {
	hs, err := s.Hotspots(ctx)
	if err != nil {
		return nil, err
	}
	radius, err := s.Radius(ctx)
	if errors.Is(err, ErrNotFound) {
		radius = fallbackRadius
	} else if err != nil {
		return nil, err
	}
	return trailmap.FromHotspots(hs, radius)
}

// Ping reports whether the catalog database is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
