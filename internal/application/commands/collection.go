package commands

import (
	"fmt"

	"palette/internal/domain"
	"palette/internal/ports"
)

func load(store ports.CollectionStore) (*domain.Collection, error) {
	c, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load collection from %s: %w", store.Location(), err)
	}
	return c, nil
}

// save restores the structural guarantees every mutation must leave behind
// before writing
func save(store ports.CollectionStore, c *domain.Collection) error {
	c.EnsureAtLeastOneFolder()
	c.EnsureIdentifiers()
	if err := store.Save(c); err != nil {
		return fmt.Errorf("failed to save collection to %s: %w", store.Location(), err)
	}
	return nil
}

func requireResolver(h *domain.Host) error {
	if h == nil || h.Resolver == nil {
		return fmt.Errorf("no resource index available")
	}
	return nil
}
