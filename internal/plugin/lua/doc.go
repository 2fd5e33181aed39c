// Package lua runs init scripts that configure the input engine.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries open. The loaders dofile, loadfile, load and loadstring are
// removed. Each execution is bounded by a timeout.
//
// # The xul module
//
// NewModule binds an engine and its host to a global table named xul:
//
//	xul.bind("normal", "ctrl-y", "yank-selection", "1")
//	xul.unbind("insert", "ctrl-w")
//	if xul.mode() == "normal" then xul.feed("g g") end
//	xul.set("xul-insert-attrs", "bg !3")
//	print(xul.get("xul-normal-attrs"))
//	xul.exec("cursor-buffer-end")
//
// Errors from bind, unbind and feed are raised as Lua errors, so a bad
// binding stops the script and DoFile returns the message.
//
// # Usage
//
//	s := lua.NewState()
//	defer s.Close()
//	lua.NewModule(engine, h).Open(s)
//	if err := s.DoFile(path); err != nil {
//	    return err
//	}
package lua
