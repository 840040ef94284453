package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	gotheme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is go-theme's registry miss, re-exported for callers that
// only import this package.
var ErrThemeNotFound = gotheme.ErrThemeNotFound

// NewSelector registers manifests in a go-theme memory registry and returns a
// selector over it. The first manifest becomes the default theme, so unknown
// theme names fall back to it.
func NewSelector(defaultVariant string, manifests ...*gotheme.Manifest) (gotheme.Selector, error) {
	registry := gotheme.NewRegistry()
	selector := gotheme.Selector{
		Registry:       registry,
		DefaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if err := registry.Register(manifest); err != nil {
			return selector, errors.Wrap(err, "theme: register manifest")
		}
		if selector.DefaultTheme == "" {
			selector.DefaultTheme = manifest.Name
		}
	}
	return selector, nil
}

// LoadManifest reads a JSON or YAML go-theme manifest from disk.
func LoadManifest(path string) (*gotheme.Manifest, error) {
	path = filepath.Clean(path)
	manifest, err := gotheme.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, errors.Wrapf(err, "theme: load manifest %s", path)
	}
	return manifest, nil
}

// Resolve selects a theme and reads the annotation tokens from the merged
// base and variant token set. Failures return Defaults with the error.
func Resolve(selector gotheme.ThemeSelector, name, variant string) (Tokens, error) {
	if selector == nil {
		return Defaults(), nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Defaults(), errors.Wrap(err, "theme: select")
	}
	return FromMap(selection.Tokens()), nil
}
