// Package library discovers named puzzle files from a directory
// manifest. Resolving a manifest entry to a parsed board is a
// separate, explicit step so that a malformed individual puzzle file
// never prevents the rest of the library from loading.
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

// ManifestEntry names one puzzle file and its catalog metadata.
type ManifestEntry struct {
	ID    string   `yaml:"id" validate:"required"`
	Title string   `yaml:"title" validate:"required"`
	Path  string   `yaml:"path" validate:"required"`
	Tags  []string `yaml:"tags"`
}

type manifestFile struct {
	Puzzles []ManifestEntry `yaml:"puzzles"`
}

var validate = validator.New()

// Load reads manifest.yaml from dir and validates every entry. It
// does not open or parse the puzzle files themselves; call
// ResolveAndParse for that.
func Load(dir string) ([]ManifestEntry, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("library: read manifest: %w", err)
	}
	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("library: parse manifest: %w", err)
	}
	for i, e := range mf.Puzzles {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("library: manifest entry %d: %w", i, err)
		}
	}
	return mf.Puzzles, nil
}

// ResolveAndParse reads and parses the puzzle file named by entry,
// relative to dir. It is kept separate from Load so a caller can
// enumerate the whole manifest (e.g. for a catalog import listing)
// before paying the cost of parsing every board.
func ResolveAndParse(dir string, entry ManifestEntry) (*puzzle.Board, error) {
	text, err := os.ReadFile(filepath.Join(dir, entry.Path))
	if err != nil {
		return nil, fmt.Errorf("library: read %s: %w", entry.Path, err)
	}
	board, err := puzzle.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("library: parse %s: %w", entry.Path, err)
	}
	return board, nil
}
