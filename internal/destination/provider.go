package destination

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
)

// BuiltinProvider serves the catalog compiled into the binary.
type BuiltinProvider struct {
	log *slog.Logger
}

// NewBuiltinProvider constructs a BuiltinProvider.
func NewBuiltinProvider(log *slog.Logger) *BuiltinProvider {
	return &BuiltinProvider{log: log}
}

// Load builds the built-in catalog.
func (p *BuiltinProvider) Load(_ context.Context) (*Catalog, error) {
	c, err := NewCatalog(builtin(), p.log)
	if err != nil {
		return nil, fmt.Errorf("loading built-in catalog: %w", err)
	}
	return c, nil
}

// FileProvider reads a catalog from a JSON file holding an array of
// destination records.
type FileProvider struct {
	path string
	log  *slog.Logger
}

// NewFileProvider constructs a FileProvider for path.
func NewFileProvider(path string, log *slog.Logger) *FileProvider {
	return &FileProvider{path: path, log: log}
}

// Load reads and validates the catalog file.
func (p *FileProvider) Load(ctx context.Context) (*Catalog, error) {
	b, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", p.path, err)
	}

	var records []Destination
	if err := json.UnmarshalContext(ctx, b, &records); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", p.path, err)
	}

	c, err := NewCatalog(records, p.log)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", p.path, err)
	}

	p.log.Info("catalog loaded", "path", p.path, "destinations", c.Len())
	return c, nil
}
