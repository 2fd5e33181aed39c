package keymap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/xul/internal/input/key"
)

// Loader errors
var (
	ErrUnknownFormat = errors.New("unknown keymap file format")
	ErrMalformed     = errors.New("malformed keymap")
)

// Format is a keymap file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Entry is one binding as written in a keymap file. Keys stay in key-string
// form so they are parsed by whoever applies the entry.
type Entry struct {
	Mode    string   `yaml:"mode"`
	Keys    string   `yaml:"keys"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// Validate checks that the entry is complete and its keys parse.
func (e Entry) Validate() error {
	if e.Mode == "" {
		return fmt.Errorf("%w: missing mode", ErrMalformed)
	}
	if e.Command == "" {
		return fmt.Errorf("%w: %q: missing command", ErrMalformed, e.Keys)
	}
	if _, err := key.ParseSequence(e.Keys); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

// LoadFile reads keymap entries from a JSON or YAML file.
func LoadFile(path string) ([]Entry, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	entries, err := LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadBytes decodes keymap entries. Every entry is validated; the first
// invalid one fails the whole file.
func LoadBytes(data []byte, format Format) ([]Entry, error) {
	var (
		entries []Entry
		err     error
	)

	switch format {
	case FormatJSON:
		entries, err = decodeJSON(data)
	case FormatYAML:
		entries, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return entries, nil
}

func decodeJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	list := gjson.GetBytes(data, "bindings")
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: \"bindings\" is not an array", ErrMalformed)
	}

	var entries []Entry
	list.ForEach(func(_, v gjson.Result) bool {
		e := Entry{
			Mode:    v.Get("mode").String(),
			Keys:    v.Get("keys").String(),
			Command: v.Get("command").String(),
		}
		for _, a := range v.Get("args").Array() {
			e.Args = append(e.Args, a.String())
		}
		entries = append(entries, e)
		return true
	})
	return entries, nil
}

type yamlFile struct {
	Bindings []Entry `yaml:"bindings"`
}

func decodeYAML(data []byte) ([]Entry, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return f.Bindings, nil
}
