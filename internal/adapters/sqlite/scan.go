package sqlite

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"palette/internal/ports"
)

// known is a registered row
type known struct {
	id    string
	mtime int64
}

func (idx *Index) loadKnown(ctx context.Context) (map[string]known, error) {
	rows, err := idx.db.QueryContext(ctx, `SELECT id, path, mtime FROM resources`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPath := make(map[string]known)
	for rows.Next() {
		var path string
		var k known
		if err := rows.Scan(&k.id, &path, &k.mtime); err != nil {
			return nil, err
		}
		byPath[path] = k
	}
	return byPath, rows.Err()
}

// Scan walks the project, registers files seen for the first time, refreshes
// changed mtimes and drops rows whose file vanished. Hidden directories are
// skipped. Everything happens in one transaction.
func (idx *Index) Scan(ctx context.Context) (*ports.ScanStats, error) {
	start := time.Now()
	stats := &ports.ScanStats{}

	existing, err := idx.loadKnown(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.rollback()

	seen := make(map[string]bool, len(existing))
	err = filepath.WalkDir(idx.projectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// Skip hidden directories
		if d.IsDir() {
			if path != idx.projectRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := idx.relPath(path)
		if err != nil {
			return nil
		}
		seen[rel] = true
		stats.Scanned++

		mtime := info.ModTime().Unix()
		k, ok := existing[rel]
		switch {
		case !ok:
			if err := tx.insertResource(uuid.NewString(), rel, mtime); err != nil {
				return err
			}
			stats.Registered++
		case k.mtime != mtime:
			if err := tx.touch(rel, mtime); err != nil {
				return err
			}
			stats.Updated++
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	for path := range existing {
		if seen[path] {
			continue
		}
		if _, err := idx.stat(path); err == nil {
			continue // lives under a skipped directory
		}
		if err := tx.deleteResource(path); err != nil {
			return stats, err
		}
		stats.Pruned++
	}

	if err := tx.commit(); err != nil {
		return stats, err
	}

	// Update last scan time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_scan_time', ?)`,
		start.Unix())

	return stats, nil
}

// Prune drops every row whose file no longer exists and returns the count
func (idx *Index) Prune(ctx context.Context) (int, error) {
	existing, err := idx.loadKnown(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := idx.beginTx()
	if err != nil {
		return 0, err
	}
	defer tx.rollback()

	pruned := 0
	for path := range existing {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := idx.stat(path); err == nil {
			continue
		}
		if err := tx.deleteResource(path); err != nil {
			return 0, err
		}
		pruned++
	}

	if err := tx.commit(); err != nil {
		return 0, err
	}
	return pruned, nil
}
