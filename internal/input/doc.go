// Package input interprets keys for a modal, vi-like editor.
//
// The Engine sits between a host editor and the user. The host delivers
// keys, runs commands and owns buffers; the engine decides what each key
// means in the current mode and answers by running host commands.
//
// # Architecture
//
// The engine is built from small cooperating parts:
//
//   - key: key codes and the key string syntax ("ctrl-x", "alt-w", "g g")
//   - keymap: per-mode binding tables and their installation into the host
//   - mode: the NORMAL/INSERT controller, the only place the mode changes
//   - till: the pending state of the f/F/t/T find operators
//   - repeat: the state behind the "." command
//
// # Key Flow
//
// At boot every real key is bound in the host to the take-key command.
// Bindings of the current mode override that default, so a key either runs
// its bound command directly or reaches TakeKey, which hands it to the
// interpreter of the current mode:
//
//	host key -> binding of current mode -> host command
//	         -> xul-take-key <code>     -> NORMAL or INSERT interpreter
//
// # Usage
//
//	e := input.New(h, input.WithLogger(logger))
//	e.Boot()
//	defer e.Unload()
//
//	if err := e.Bind("insert", "j k", "xul-exit-insert"); err != nil {
//	    return err
//	}
//
// An Engine is not safe for concurrent use. The host must deliver keys
// from a single goroutine.
package input
