package ports

import "palette/internal/domain"

// CollectionStore loads and saves the palette collection
type CollectionStore interface {
	// Load returns the persisted collection, or a fresh one if none exists yet.
	// The result always holds at least one folder and fully identified folders.
	Load() (*domain.Collection, error)

	// Save persists the collection
	Save(c *domain.Collection) error

	// Location describes where the collection lives (for messages)
	Location() string
}
