// Package key provides key codes and key-string parsing for the input system.
//
// Keys travel through the engine as plain integer codes, the same shape the
// host uses on its dispatch table:
//
//   - Printable ASCII characters are their own code ('a' is 97)
//   - Control characters keep their ASCII value (Tab is 9, Esc is 27, Ctrl-C is 3)
//   - Special keys (arrows, Delete, Home, PageUp, ...) live in a reserved range
//     above the Unicode code space
//   - Multi-byte input is delivered as the single MByte marker
//   - Virtual codes at or above VirtualBase are handles the host hands out for
//     registered multi-key sequences
//
// # Key Strings
//
// Key sequences are written as whitespace separated tokens:
//
//   - Single characters: "a", "G", "$", "{"
//   - Names: "esc", "tab", "enter", "bsp", "spc", "del", "home", "end",
//     "pageup", "pagedown", "up", "down", "left", "right", "shift-tab", "f1".."f12"
//   - Control keys: "ctrl-a" .. "ctrl-z"
//   - Meta keys: "alt-x" and "meta-x" expand to Esc followed by x
//
// A sequence may hold at most MaxSeqLen codes.
package key
