package json

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// KoanfDelimiter separates nested keys in trees built by LoadFiles.
const KoanfDelimiter = "."

// LoadFiles loads the JSON files at paths into a new koanf tree.
// Files are merged in order, so later files override keys of earlier ones.
func (f *Formatter) LoadFiles(paths ...string) (*koanf.Koanf, error) {
	k := koanf.New(KoanfDelimiter)

	for _, path := range paths {
		err := k.Load(file.Provider(path), f)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
	}

	return k, nil
}

// Unmarshal decodes a JSON object into a map, letting the Formatter act as a koanf.Parser.
func (f *Formatter) Unmarshal(data []byte) (map[string]any, error) {
	var out map[string]any

	err := f.Read(config.Text(data), &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Marshal encodes a koanf tree as compact JSON.
func (f *Formatter) Marshal(tree map[string]any) ([]byte, error) {
	out, err := f.Write(tree)
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}
