package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-theft-auto/imx/b64"
	"github.com/go-theft-auto/imx/gui"
)

// ErrNotFound is returned by Store.Get for an unknown key.
var ErrNotFound = errors.New("theme: key not found")

// Store persists opaque payloads under caller-chosen keys.
type Store interface {
	Get(key string) (string, error)
	Put(key, payload string) error
}

// persisted is the JSON shape of a saved theme; colors are keyed by name.
type persisted struct {
	Name      string            `json:"name"`
	Base      string            `json:"base,omitempty"`
	Colors    map[string]string `json:"colors,omitempty"`
	Rounding  *float32          `json:"rounding,omitempty"`
	Alpha     *float32          `json:"alpha,omitempty"`
	FontScale *float32          `json:"font_scale,omitempty"`
}

// Save stores t under key as base64-encoded JSON.
func Save(s Store, key string, t Theme) error {
	p := persisted{Name: t.Name, Base: t.Base, Rounding: t.Rounding, Alpha: t.Alpha, FontScale: t.FontScale}
	if len(t.Colors) > 0 {
		p.Colors = make(map[string]string, len(t.Colors))
		for c, v := range t.Colors {
			p.Colors[c.String()] = formatHexColor(v)
		}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("theme: encode %q: %w", key, err)
	}
	if err := s.Put(key, b64.Encode(data)); err != nil {
		return fmt.Errorf("theme: save %q: %w", key, err)
	}
	return nil
}

// Load reads the theme saved under key. A corrupted payload yields an
// error wrapping b64.ErrMalformedInput.
func Load(s Store, key string) (Theme, error) {
	payload, err := s.Get(key)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: load %q: %w", key, err)
	}
	data, err := b64.Decode(payload)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: load %q: %w", key, err)
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return Theme{}, fmt.Errorf("theme: decode %q: %w", key, err)
	}

	t := Theme{Name: p.Name, Base: p.Base, Rounding: p.Rounding, Alpha: p.Alpha, FontScale: p.FontScale}
	for name, hex := range p.Colors {
		c, ok := gui.ParseStyleColor(name)
		if !ok {
			// Colors from newer versions are skipped.
			continue
		}
		v, err := parseHexColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: decode %q: %s: %w", key, name, err)
		}
		if t.Colors == nil {
			t.Colors = make(map[gui.StyleColor]uint32)
		}
		t.Colors[c] = v
	}
	return t, nil
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func (s *MemStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemStore) Put(key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]string)
	}
	s.m[key] = payload
	return nil
}

// DirStore keeps one file per key in a directory. Keys may not contain
// path separators.
type DirStore struct {
	Dir string
}

func (s DirStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("theme: invalid key %q", key)
	}
	return filepath.Join(s.Dir, key+".theme"), nil
}

func (s DirStore) Get(key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	return strings.TrimSpace(string(data)), err
}

func (s DirStore) Put(key, payload string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(payload+"\n"), 0o644)
}
