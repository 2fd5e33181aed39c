// Package keymap holds the per-mode key binding tables.
//
// A Table is an ordered list of bindings. Bind appends without removing
// earlier bindings for the same keys; Unbind removes the first binding whose
// key sequence matches exactly. While a table is installed into the host,
// every binding carries the dispatch handle the host knows it by: the key
// itself for single keys, a virtual code for multi-key sequences.
//
// # Installing
//
// Install and Uninstall are always applied to the whole table. Changing a
// live table means uninstalling everything and installing it again:
//
//	tbl.Uninstall(h, "xul-take-key")
//	tbl.Bind(key.MustParseSequence("g g"), "cursor-buffer-begin")
//	tbl.Install(h)
//
// # Keymap Files
//
// LoadFile reads bindings from JSON or YAML files:
//
//	{
//	  "bindings": [
//	    {"mode": "normal", "keys": "g g", "command": "cursor-buffer-begin"},
//	    {"mode": "insert", "keys": "j k", "command": "xul-exit-insert"}
//	  ]
//	}
//
// Export writes tables back out in the same format.
package keymap
