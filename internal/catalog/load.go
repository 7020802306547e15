package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/playperu/trailmap/internal/database"
	"github.com/playperu/trailmap/internal/migrations"
	"github.com/playperu/trailmap/internal/trailmap"
)

// Origin names where a catalog was loaded from.
type Origin string

const (
	OriginFile     Origin = "file"
	OriginDatabase Origin = "sqlite"
	OriginBuiltin  Origin = "builtin"
)

// Source selects the catalog. File wins over DBPath; with neither set the
// built-in itinerary is used.
type Source struct {
	File   string
	DBPath string
	Radius int
}

// Catalog is a loaded, validated map and, for database sources, the open
// store backing it.
type Catalog struct {
	Map    *trailmap.Map
	Origin Origin
	Store  *Store

	db *sql.DB
}

// Close releases the catalog database, if any.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Load resolves src into a Catalog. A database catalog is migrated and
// seeded with the built-in itinerary on first use.
func Load(ctx context.Context, logger *slog.Logger, src Source) (*Catalog, error) {
	switch {
	case src.File != "":
		f, err := LoadFile(src.File)
		if err != nil {
			return nil, err
		}
		m, err := f.Map(src.Radius)
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", src.File, err)
		}
		return &Catalog{Map: m, Origin: OriginFile}, nil

	case src.DBPath != "":
		db, err := database.Open(ctx, src.DBPath)
		if err != nil {
			return nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		c, err := loadDB(ctx, logger, db, src)
		if err != nil {
			db.Close()
			return nil, err
		}
		return c, nil

	default:
		m, err := trailmap.FromHotspots(trailmap.Itinerary(), src.Radius)
		if err != nil {
			return nil, fmt.Errorf("validating built-in itinerary: %w", err)
		}
		return &Catalog{Map: m, Origin: OriginBuiltin}, nil
	}
}

func loadDB(ctx context.Context, logger *slog.Logger, db *sql.DB, src Source) (*Catalog, error) {
	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	store := NewStore(db)
	seeded, err := store.Seed(ctx, trailmap.Itinerary(), src.Radius)
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	if seeded {
		logger.Info("hotspot catalog seeded", "path", src.DBPath)
	}

	m, err := store.Map(ctx, src.Radius)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return &Catalog{Map: m, Origin: OriginDatabase, Store: store, db: db}, nil
}
