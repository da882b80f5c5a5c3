// Package fixtures loads the read-only catalog dataset from YAML.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/service"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Ensure we implement the interface.
var (
	_ service.FixtureLoader = EmbeddedLoader{}
	_ service.FixtureLoader = (*FileLoader)(nil)
)

// EmbeddedLoader serves the dataset compiled into the binary.
type EmbeddedLoader struct{}

// Embedded returns a loader for the built-in dataset.
func Embedded() EmbeddedLoader {
	return EmbeddedLoader{}
}

// Load decodes the built-in dataset.
func (EmbeddedLoader) Load(ctx context.Context) (model.Fixtures, error) {
	if err := ctx.Err(); err != nil {
		return model.Fixtures{}, err
	}
	return Decode(embeddedCatalog)
}

// FileLoader reads a dataset from a YAML file on disk.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the YAML file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and decodes the file.
func (l *FileLoader) Load(ctx context.Context) (model.Fixtures, error) {
	if err := ctx.Err(); err != nil {
		return model.Fixtures{}, err
	}

	data, err := os.ReadFile(l.path) // #nosec G304 - path comes from user configuration
	if err != nil {
		return model.Fixtures{}, fmt.Errorf("failed to read fixtures %s: %w", l.path, err)
	}

	fx, err := Decode(data)
	if err != nil {
		return model.Fixtures{}, fmt.Errorf("fixtures %s: %w", l.path, err)
	}

	return fx, nil
}

// Decode parses a YAML dataset. Unknown keys are rejected so typos surface early.
func Decode(data []byte) (model.Fixtures, error) {
	var fx model.Fixtures

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return model.Fixtures{}, fmt.Errorf("%w: %v", common.ErrFixturesFormat, err)
	}

	if len(fx.Products) == 0 {
		return model.Fixtures{}, common.ErrEmptyFixtures
	}

	return fx, nil
}

// Encode renders a dataset as YAML.
func Encode(fx model.Fixtures) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fx); err != nil {
		return nil, fmt.Errorf("failed to encode fixtures: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode fixtures: %w", err)
	}
	return buf.Bytes(), nil
}
