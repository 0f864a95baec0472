package preset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/tonhe/replaylens/internal/overlay"
)

const ext = ".toml"

// Load reads a preset file. Missing layout fractions take their defaults,
// and a missing name is taken from the file name.
func Load(path string) (*Preset, error) {
	p := Preset{Layout: overlay.DefaultFractions()}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return &p, nil
}

// Save writes a preset to path.
func Save(p *Preset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "creating presets dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating preset")
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}

// Path returns the file that holds the named preset in dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+ext)
}

// List returns the base names of all preset files in dir. A missing dir is
// not an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing presets")
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Find resolves name to a user preset in dir, falling back to the shipped
// presets.
func Find(dir, name string) (*Preset, error) {
	p, err := Load(Path(dir, name))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return Builtin(name)
}
