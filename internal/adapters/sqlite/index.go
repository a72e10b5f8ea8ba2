package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/google/uuid"

	"palette/internal/domain"
	"palette/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// ErrNotInProject is returned when a path does not name a file under the project root
var ErrNotInProject = errors.New("not a file in the project")

// Index implements ports.ResourceIndex using SQLite. Each project gets its own
// database under the XDG data directory, keyed by a hash of the project root.
type Index struct {
	db          *sql.DB
	projectRoot string
	dbPath      string
}

// Ensure Index implements ResourceIndex
var _ ports.ResourceIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// NewIndexAt creates an index stored at dbPath instead of the per-project
// location under the XDG data directory
func NewIndexAt(dbPath string) *Index {
	return &Index{dbPath: dbPath}
}

// Open initializes the index for the given project root
func (idx *Index) Open(projectRoot string) error {
	// Expand ~ in path
	if len(projectRoot) > 0 && projectRoot[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		projectRoot = filepath.Join(home, projectRoot[1:])
	}
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	idx.projectRoot = root
	if idx.dbPath == "" {
		idx.dbPath = databasePath(root)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS resources (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL UNIQUE,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// ProjectRoot returns the absolute project root the index serves
func (idx *Index) ProjectRoot() string {
	return idx.projectRoot
}

// DatabasePath returns where the index is stored
func (idx *Index) DatabasePath() string {
	return idx.dbPath
}

// databasePath returns the path for the SQLite database
func databasePath(projectRoot string) string {
	return filepath.Join(xdg.DataHome, "palette", "index", hashProjectPath(projectRoot)+".db")
}

// hashProjectPath returns a short hash of the project path
func hashProjectPath(projectRoot string) string {
	h := sha256.Sum256([]byte(projectRoot))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and project path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('project_path_hash', ?);
	`, schemaVersion, hashProjectPath(idx.projectRoot))
	return err
}

// relPath normalizes a path to the slash separated, project relative form
// stored in the database
func (idx *Index) relPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(idx.projectRoot, path)
		if err != nil {
			return "", err
		}
		path = rel
	}
	path = filepath.ToSlash(filepath.Clean(path))
	if path == "." || path == ".." || strings.HasPrefix(path, "../") {
		return "", fmt.Errorf("%w: %s", ErrNotInProject, path)
	}
	return path, nil
}

// stat returns file info for a project relative path, rejecting directories
func (idx *Index) stat(rel string) (os.FileInfo, error) {
	info, err := os.Stat(filepath.Join(idx.projectRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotInProject, rel)
	}
	return info, nil
}

// Identify returns the identifier of a project file, registering it on first sight
func (idx *Index) Identify(res *domain.Resource) (string, error) {
	if res == nil {
		return "", fmt.Errorf("%w: no resource", ErrNotInProject)
	}
	rel, err := idx.relPath(res.Path)
	if err != nil {
		return "", err
	}
	info, err := idx.stat(rel)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotInProject, err)
	}

	var id string
	err = idx.db.QueryRow(`SELECT id FROM resources WHERE path = ?`, rel).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	id = uuid.NewString()
	if _, err := idx.db.Exec(`
		INSERT INTO resources (id, path, mtime) VALUES (?, ?, ?)
	`, id, rel, info.ModTime().Unix()); err != nil {
		return "", fmt.Errorf("failed to register %s: %w", rel, err)
	}
	return id, nil
}

// Lookup returns the live resource for an identifier. Identifiers whose file
// is gone do not resolve, even though their row remains until Prune.
func (idx *Index) Lookup(id string) (*domain.Resource, bool) {
	path, ok := idx.PathOf(id)
	if !ok {
		return nil, false
	}
	if _, err := idx.stat(path); err != nil {
		return nil, false
	}
	return domain.NewResource(path), true
}

// PathOf returns the recorded path of an identifier
func (idx *Index) PathOf(id string) (string, bool) {
	if idx.db == nil || id == "" {
		return "", false
	}
	var path string
	if err := idx.db.QueryRow(`SELECT path FROM resources WHERE id = ?`, id).Scan(&path); err != nil {
		return "", false
	}
	return path, true
}

// Relocate records that a file moved from oldPath to newPath. The identifier
// follows the file; a row already registered at newPath is replaced.
func (idx *Index) Relocate(oldPath, newPath string) error {
	oldRel, err := idx.relPath(oldPath)
	if err != nil {
		return err
	}
	newRel, err := idx.relPath(newPath)
	if err != nil {
		return err
	}
	if oldRel == newRel {
		return nil
	}

	tx, err := idx.beginTx()
	if err != nil {
		return err
	}
	defer tx.rollback()

	if err := tx.deleteResource(newRel); err != nil {
		return err
	}
	n, err := tx.relocate(oldRel, newRel)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s is not registered", ErrNotInProject, oldRel)
	}
	if info, err := idx.stat(newRel); err == nil {
		if err := tx.touch(newRel, info.ModTime().Unix()); err != nil {
			return err
		}
	}
	return tx.commit()
}
