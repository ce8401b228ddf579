package destination

import (
	"context"
	"errors"
	"log/slog"

	"github.com/neexbeast/travel-companion/internal/validation"
)

// ErrEmptyCatalog is returned when no valid destination survives loading.
var ErrEmptyCatalog = errors.New("catalog has no valid destinations")

// Provider supplies the destination catalog at process start.
type Provider interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Catalog is an ordered, read-only set of destinations keyed by ID.
type Catalog struct {
	items []Destination
	index map[string]int
}

// NewCatalog normalizes and validates records in order. Malformed records and
// duplicate IDs are logged and skipped.
func NewCatalog(records []Destination, log *slog.Logger) (*Catalog, error) {
	c := &Catalog{
		items: make([]Destination, 0, len(records)),
		index: make(map[string]int, len(records)),
	}

	for i, raw := range records {
		d := normalize(raw)
		if err := validation.Struct(d); err != nil {
			log.Warn("skipping malformed destination", "position", i, "id", d.ID, "err", err)
			continue
		}
		if _, dup := c.index[d.ID]; dup {
			log.Warn("skipping duplicate destination", "position", i, "id", d.ID)
			continue
		}
		c.index[d.ID] = len(c.items)
		c.items = append(c.items, d)
	}

	if len(c.items) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// All returns the destinations in catalog order. The slice is a copy.
func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up a destination by ID.
func (c *Catalog) Get(id string) (Destination, bool) {
	i, ok := c.index[id]
	if !ok {
		return Destination{}, false
	}
	return c.items[i], true
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.items)
}
