package font

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
)

const builtinPrefix = "builtin:"

var builtins = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
}

// readSource returns the bytes behind a source name: "builtin:<name>" for
// an embedded Go font, otherwise a path relative to baseDir.
func readSource(baseDir, name string) ([]byte, error) {
	if b, ok := strings.CutPrefix(name, builtinPrefix); ok {
		data, ok := builtins[b]
		if !ok {
			return nil, fmt.Errorf("font: %s: %w", name, ErrSourceNotFound)
		}
		return data, nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, name)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("font: %s: %w", path, ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return data, nil
}

// loadSources reads and parses each distinct source once, concurrently.
func loadSources(baseDir string, sources []string) (map[string]*opentype.Font, error) {
	unique := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		unique[s] = struct{}{}
	}

	names := make([]string, 0, len(unique))
	for s := range unique {
		names = append(names, s)
	}
	parsed := make([]*opentype.Font, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			data, err := readSource(baseDir, name)
			if err != nil {
				return err
			}
			f, err := opentype.Parse(data)
			if err != nil {
				return fmt.Errorf("font: parse %s: %w", name, err)
			}
			parsed[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*opentype.Font, len(names))
	for i, name := range names {
		out[name] = parsed[i]
	}
	return out, nil
}
