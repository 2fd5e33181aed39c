package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/xul/internal/input"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/mode"
	"github.com/dshills/xul/internal/logging"
)

// EnvPrefix prefixes the environment variables ApplyEnv reads.
const EnvPrefix = "XUL_"

// Config is the decoded configuration file.
type Config struct {
	LogLevel   string    `toml:"log_level"`
	InitScript string    `toml:"init_script"`
	Keymaps    []string  `toml:"keymaps"`
	Options    Options   `toml:"options"`
	Bindings   []Binding `toml:"bind"`
}

// Options are written to host variables before boot. Unset fields leave
// the variable alone, so the engine's own defaults apply.
type Options struct {
	NormalAttrs        string `toml:"normal_attrs"`
	InsertAttrs        string `toml:"insert_attrs"`
	InsertNoCursorLine *bool  `toml:"insert_no_cursor_line"`
	CursorLine         *bool  `toml:"cursor_line"`
	CtrlHIsBackspace   *bool  `toml:"ctrl_h_is_backspace"`
}

// Binding is one [[bind]] entry.
type Binding struct {
	Mode    string   `toml:"mode"`
	Keys    string   `toml:"keys"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// DefaultPath returns xul/config.toml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xul", "config.toml"), nil
}

// Load reads and validates the file at path. A missing file yields
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// LoadBytes decodes and validates data. Paths are left as written.
func LoadBytes(data []byte) (*Config, error) {
	return parse("<bytes>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and every binding.
func (c *Config) Validate() error {
	var problems []string
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("log_level: unknown level %q", c.LogLevel))
	}
	for i, b := range c.Bindings {
		if _, ok := mode.Parse(b.Mode); !ok {
			problems = append(problems, fmt.Sprintf("bind[%d]: no mode named '%s'", i, b.Mode))
		}
		if _, err := key.ParseSequence(b.Keys); err != nil {
			problems = append(problems, fmt.Sprintf("bind[%d]: keys: %v", i, err))
		}
		if b.Command == "" {
			problems = append(problems, fmt.Sprintf("bind[%d]: missing command", i))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// resolvePaths makes relative script and keymap paths relative to dir and
// expands a leading ~.
func (c *Config) resolvePaths(dir string) {
	if c.InitScript != "" {
		c.InitScript = resolvePath(dir, c.InitScript)
	}
	for i, p := range c.Keymaps {
		c.Keymaps[i] = resolvePath(dir, p)
	}
}

func resolvePath(dir, p string) string {
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ApplyEnv overrides fields from XUL_LOG_LEVEL and XUL_INIT_SCRIPT.
// Empty values count as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "INIT_SCRIPT"); ok {
		c.InitScript = v
	}
}

// Vars returns the host variables the options set.
func (o Options) Vars() map[string]string {
	vars := make(map[string]string)
	if o.NormalAttrs != "" {
		vars[mode.VarNormalAttrs] = o.NormalAttrs
	}
	if o.InsertAttrs != "" {
		vars[mode.VarInsertAttrs] = o.InsertAttrs
	}
	setBool(vars, mode.VarInsertNoCursorLine, o.InsertNoCursorLine)
	setBool(vars, mode.VarCursorLine, o.CursorLine)
	setBool(vars, input.VarCtrlHIsBackspace, o.CtrlHIsBackspace)
	return vars
}

func setBool(vars map[string]string, name string, b *bool) {
	if b == nil {
		return
	}
	if *b {
		vars[name] = "yes"
	} else {
		vars[name] = "no"
	}
}
