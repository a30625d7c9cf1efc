// Package corpus loads the static document corpus and suggestion catalog.
// Both datasets ship embedded in the binary; a config-provided YAML path
// overrides the embedded copy (useful for test doubles and demos).
package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/safequery/safequery/internal/domain"
)

//go:embed data/corpus.yaml
var embeddedCorpus []byte

//go:embed data/catalog.yaml
var embeddedCatalog []byte

type corpusFile struct {
	Documents []domain.Document `yaml:"documents"`
}

type catalogFile struct {
	Questions []string `yaml:"questions"`
}

// LoadCorpus returns the document corpus. An empty path selects the
// embedded dataset.
func LoadCorpus(path string) ([]domain.Document, error) {
	data, err := read(path, embeddedCorpus)
	if err != nil {
		return nil, err
	}

	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	for i, d := range f.Documents {
		if d.Title == "" || d.Content == "" {
			return nil, fmt.Errorf("corpus document %d: title and content are required", i)
		}
	}

	return f.Documents, nil
}

// LoadCatalog returns the suggestion catalog in catalog order. An empty
// path selects the embedded dataset.
func LoadCatalog(path string) ([]string, error) {
	data, err := read(path, embeddedCatalog)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return f.Questions, nil
}

func read(path string, embedded []byte) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return data, nil
}
