// Package app wires the xul components together: configuration, logging,
// the reference host, the input engine, keymap files, the Lua init script
// and the terminal front end.
package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/dshills/xul/internal/config"
	"github.com/dshills/xul/internal/host/memhost"
	"github.com/dshills/xul/internal/input"
	"github.com/dshills/xul/internal/input/keymap"
	"github.com/dshills/xul/internal/logging"
	"github.com/dshills/xul/internal/plugin/lua"
	"github.com/dshills/xul/internal/renderer/backend"
)

// Application owns one editing session.
type Application struct {
	opts   Options
	cfg    *config.Config
	logger *logging.Logger

	host   *memhost.Host
	engine *input.Engine
	lua    *lua.State

	term *backend.Terminal

	running atomic.Bool
	quit    bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means the default path.
	ConfigPath string

	// NoConfig skips the configuration file.
	NoConfig bool

	// File is the file to edit. Empty edits a scratch buffer.
	File string

	// InitScript overrides the configured Lua init script.
	InitScript string

	// Keymaps are loaded after the configured keymap files.
	Keymaps []string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogOutput receives log lines. Nil discards them, since the terminal
	// front end owns stderr while it runs.
	LogOutput io.Writer
}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts}
	if err := a.bootstrap(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// bootstrap initializes all components in dependency order.
func (a *Application) bootstrap() error {
	// 1. Config
	cfg, err := a.loadConfig()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg

	// 2. Logger
	out := a.opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: out,
		Prefix: "xul",
	})

	// 3. Host
	text, err := readFile(a.opts.File)
	if err != nil {
		return err
	}
	a.host = memhost.New(text, memhost.WithLogger(a.logger))
	for name, value := range cfg.Options.Vars() {
		a.host.SetVar(name, value)
	}
	a.registerCommands()

	// 4. Engine
	a.engine = input.New(a.host, input.WithLogger(a.logger))
	a.engine.Boot()

	// 5. Bindings: config entries, then keymap files
	for _, b := range cfg.Bindings {
		if err := a.engine.Bind(b.Mode, b.Keys, b.Command, b.Args...); err != nil {
			return &InitError{Component: "config bindings", Err: err}
		}
	}
	for _, path := range append(cfg.Keymaps, a.opts.Keymaps...) {
		if err := a.loadKeymap(path); err != nil {
			return &InitError{Component: "keymap " + path, Err: err}
		}
	}

	// 6. Lua init script
	if cfg.InitScript != "" {
		a.lua = lua.NewState()
		lua.NewModule(a.engine, a.host).Open(a.lua)
		if err := a.lua.DoFile(cfg.InitScript); err != nil {
			return &InitError{Component: "init script", Err: err}
		}
	}

	a.logger.Info("started, file %q", a.opts.File)
	return nil
}

// loadConfig reads the configuration and applies environment and option
// overrides.
func (a *Application) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if !a.opts.NoConfig {
		path := a.opts.ConfigPath
		if path == "" {
			if p, err := config.DefaultPath(); err == nil {
				path = p
			}
		}
		if path != "" {
			var err error
			if cfg, err = config.Load(path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if a.opts.LogLevel != "" {
		cfg.LogLevel = a.opts.LogLevel
	}
	if a.opts.InitScript != "" {
		cfg.InitScript = a.opts.InitScript
	}
	return cfg, cfg.Validate()
}

// loadKeymap binds every entry of a keymap file.
func (a *Application) loadKeymap(path string) error {
	entries, err := keymap.LoadFile(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := a.engine.Bind(e.Mode, e.Keys, e.Command, e.Args...); err != nil {
			return err
		}
	}
	a.logger.Debug("loaded %d bindings from %s", len(entries), path)
	return nil
}

// readFile returns the contents of path. A missing file starts empty.
func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", &FileError{Op: "open", Path: path, Err: err}
	}
	return string(data), nil
}

// Host returns the reference host.
func (a *Application) Host() *memhost.Host {
	return a.host
}

// Engine returns the input engine.
func (a *Application) Engine() *input.Engine {
	return a.engine
}

// Config returns the effective configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// Close unloads the engine and releases the Lua state.
func (a *Application) Close() {
	if a.engine != nil && a.engine.Booted() {
		a.engine.Unload()
	}
	if a.lua != nil {
		_ = a.lua.Close()
	}
}
