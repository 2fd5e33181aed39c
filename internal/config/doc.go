// Package config loads xul's TOML configuration file.
//
// A configuration names the log level, an optional Lua init script, keymap
// files to load at startup, option values written to host variables before
// the engine boots, and extra bindings:
//
//	log_level = "debug"
//	init_script = "~/.config/xul/init.lua"
//	keymaps = ["keys.yaml"]
//
//	[options]
//	normal_attrs = "bg !4"
//	insert_no_cursor_line = false
//
//	[[bind]]
//	mode = "normal"
//	keys = "ctrl-y"
//	command = "yank-selection"
//	args = ["1"]
//
// Relative paths are taken relative to the file's directory. A missing
// file is not an error: Load returns Default.
package config
