package app

import (
	"os"
)

// Host commands the application adds on top of the reference host's.
const (
	CmdWrite     = "write"
	CmdQuit      = "quit"
	CmdWriteQuit = "write-quit"
)

// aliases are the short names accepted at the command prompt.
var aliases = map[string]string{
	"w":  CmdWrite,
	"q":  CmdQuit,
	"wq": CmdWriteQuit,
	"x":  CmdWriteQuit,
}

func (a *Application) registerCommands() {
	cmds := map[string]func(args ...string){
		CmdWrite: func(args ...string) {
			_ = a.write(args...)
		},
		CmdQuit: func(...string) {
			a.quit = true
		},
		CmdWriteQuit: func(args ...string) {
			if a.write(args...) == nil {
				a.quit = true
			}
		},
	}
	for name, fn := range cmds {
		a.host.RegisterCommand(name, fn)
	}
	for alias, name := range aliases {
		a.host.RegisterCommand(alias, cmds[name])
	}
}

// write saves the buffer to the file being edited, or to args[0] which
// then becomes the file being edited. Failures go to the host error
// channel.
func (a *Application) write(args ...string) error {
	path := a.opts.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		a.host.Errorf("%v", ErrNoFilePath)
		return ErrNoFilePath
	}
	if err := os.WriteFile(path, []byte(a.host.Text()), 0o644); err != nil {
		ferr := &FileError{Op: "write", Path: path, Err: err}
		a.host.Errorf("%v", ferr)
		return ferr
	}
	a.opts.File = path
	a.logger.Info("wrote %s", path)
	return nil
}

// Quitting reports whether a quit command has run.
func (a *Application) Quitting() bool {
	return a.quit
}
