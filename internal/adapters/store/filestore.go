package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"palette/internal/domain"
	"palette/internal/ports"
)

// Format is an on-disk encoding of the collection
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the encoding from the file extension; anything that is
// not .yaml or .yml is JSON
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FileStore persists the collection in a single JSON or YAML file
type FileStore struct {
	path        string
	format      Format
	initialMode domain.SortMode
}

// Ensure FileStore implements CollectionStore
var _ ports.CollectionStore = (*FileStore)(nil)

// NewFileStore creates a store for the collection file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, format: FormatFor(path)}
}

// SetInitialSortMode sets the sort mode of the collection created when no
// file exists yet
func (s *FileStore) SetInitialSortMode(mode domain.SortMode) {
	s.initialMode = mode
}

// Location returns the collection file path
func (s *FileStore) Location() string {
	return s.path
}

// Load reads the collection. A missing file yields a fresh collection.
func (s *FileStore) Load() (*domain.Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		c := domain.NewCollection()
		c.SortMode = s.initialMode
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return c, nil
}

// Save writes the collection through a temp file and a rename, so a crash
// never leaves a truncated file behind
func (s *FileStore) Save(c *domain.Collection) error {
	data, err := Encode(c, s.format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create collection directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".collection-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Encode serializes a collection
func Encode(c *domain.Collection, format Format) ([]byte, error) {
	dto := toDTO(c)
	switch format {
	case FormatYAML:
		return yaml.Marshal(&dto)
	default:
		return json.MarshalIndent(&dto, "", "  ")
	}
}

// Decode parses a collection and restores its structural guarantees: at
// least one folder, and a unique identifier on every folder
func Decode(data []byte, format Format) (*domain.Collection, error) {
	var dto collectionDTO
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &dto)
	default:
		err = json.Unmarshal(data, &dto)
	}
	if err != nil {
		return nil, err
	}

	c, err := fromDTO(dto)
	if err != nil {
		return nil, err
	}
	c.EnsureIdentifiers()
	if _, err := c.EnsureUniqueNames(); err != nil {
		return nil, err
	}
	c.EnsureAtLeastOneFolder()
	return c, nil
}
