package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/tilkit/til/internal/storage"
)

// RegistryPath is where the user template registry lives, relative to
// the journal root.
var RegistryPath = path.Join(".templates", "templates.yaml")

// registryDoc is the on-disk shape of the registry. A sequence keeps
// insertion order stable across save/load cycles.
type registryDoc struct {
	Templates []Template `yaml:"templates"`
}

// FileRegistry persists user templates as a YAML document through the
// journal storage provider, so writes are atomic.
type FileRegistry struct {
	store storage.Provider
}

// NewFileRegistry returns a registry backed by the given provider.
func NewFileRegistry(store storage.Provider) *FileRegistry {
	return &FileRegistry{store: store}
}

// Load reads the registry file. A missing file is an empty registry.
func (r *FileRegistry) Load() ([]Template, error) {
	data, err := r.store.Read(RegistryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var doc registryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("template: parse registry: %w", err)
	}
	return doc.Templates, nil
}

// Save writes the full user template set back to the registry file.
func (r *FileRegistry) Save(templates []Template) error {
	data, err := yaml.Marshal(registryDoc{Templates: templates})
	if err != nil {
		return fmt.Errorf("template: encode registry: %w", err)
	}
	return r.store.Write(RegistryPath, data)
}
