// Package backend is xul's terminal front end.
//
// Terminal wraps a tcell screen. PollEvent turns terminal input into host
// key codes through key.FromTcell, and Draw renders the reference host:
// buffer lines, the selection in reverse video, the cursor line when the
// cursor-line variable is on, and a status line styled by xul-mode-attrs.
//
// Attribute strings use the host's syntax:
//
//	style, err := backend.ParseAttrs("fg #ffcc00 bg !4 bold")
package backend
