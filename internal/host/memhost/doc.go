// Package memhost is an in-memory editor host.
//
// It implements host.Host on top of a plain line buffer so the input engine
// can run without a real editor: headless from a key string, under tests, or
// behind the terminal front end. It provides:
//
//   - Lines laid out as grapheme clusters with display widths
//   - One frame with a cursor and a char, line or rect selection
//   - A snapshot undo log whose newest records can be merged
//   - Key dispatch through a trie of registered key sequences
//   - The cursor, selection, search, yank and edit commands
//   - A string variable store and an error list
//
// # Usage
//
//	h := memhost.New("hello world")
//	h.RegisterCommand("greet", func(args ...string) { ... })
//	h.BindKey('g', "greet")
//	h.Feed('g')
//
// A Host is not safe for concurrent use. Callers feeding keys from several
// goroutines must serialize them.
package memhost
