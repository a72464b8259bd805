package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Load reads a Store from the YAML file at path.
func Load(path string) (Store, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return Store{}, fmt.Errorf("error opening content file %s: %w", path, err)
	}
	defer f.Close()
	store, err := Decode(f)
	if err != nil {
		return Store{}, fmt.Errorf("error loading content file %s: %w", path, err)
	}
	return store, nil
}

// Decode reads a Store from YAML. Fields missing from the input are left at
// their zero value.
func Decode(r io.Reader) (Store, error) {
	var store Store
	if err := yaml.NewDecoder(r).Decode(&store); err != nil {
		if errors.Is(err, io.EOF) {
			return Store{}, nil
		}
		return Store{}, fmt.Errorf("error decoding content: %w", err)
	}
	return store, nil
}

// WriteJSON writes store to w as indented JSON.
func WriteJSON(w io.Writer, store Store) error {
	out, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding content: %w", err)
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("error writing content: %w", err)
	}
	return nil
}
