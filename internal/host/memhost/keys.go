package memhost

import (
	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

// VarCtrlHIsBackspace makes ctrl-h act as backspace, both when fed and
// when bound.
const VarCtrlHIsBackspace = "ctrl-h-is-backspace"

// binding is what a key is dispatched to.
type binding struct {
	cmd  string
	args []string
}

// seqTree maps registered key sequences to their virtual codes.
type seqTree struct {
	root    *seqNode
	handles map[key.Code]key.Sequence
	next    key.Code
}

type seqNode struct {
	children map[key.Code]*seqNode
	handle   key.Code
}

func newSeqNode() *seqNode {
	return &seqNode{children: make(map[key.Code]*seqNode)}
}

func newSeqTree() *seqTree {
	return &seqTree{
		root:    newSeqNode(),
		handles: make(map[key.Code]key.Sequence),
		next:    key.VirtualBase,
	}
}

// insert registers seq and returns its code. Registering a sequence twice
// returns the existing code.
func (t *seqTree) insert(seq key.Sequence) key.Code {
	node := t.root
	for _, k := range seq {
		child, ok := node.children[k]
		if !ok {
			child = newSeqNode()
			node.children[k] = child
		}
		node = child
	}
	if node.handle == key.Null {
		node.handle = t.next
		t.next++
		t.handles[node.handle] = seq.Clone()
	}
	return node.handle
}

// lookup returns the code of seq.
func (t *seqTree) lookup(seq key.Sequence) (key.Code, bool) {
	node := t.walk(seq)
	if node == nil || node.handle == key.Null {
		return key.Null, false
	}
	return node.handle, true
}

// remove releases a code and prunes empty nodes.
func (t *seqTree) remove(handle key.Code) bool {
	seq, ok := t.handles[handle]
	if !ok {
		return false
	}
	delete(t.handles, handle)

	path := make([]*seqNode, 0, len(seq)+1)
	path = append(path, t.root)
	node := t.root
	for _, k := range seq {
		node = node.children[k]
		path = append(path, node)
	}
	node.handle = key.Null

	for i := len(path) - 1; i > 0; i-- {
		current := path[i]
		if current.handle != key.Null || len(current.children) > 0 {
			break
		}
		delete(path[i-1].children, seq[i-1])
	}
	return true
}

// match reports how keys relate to the registered sequences: the code of
// an exact match, and whether some longer sequence starts with keys.
func (t *seqTree) match(keys []key.Code) (handle key.Code, exact, prefix bool) {
	node := t.walk(keys)
	if node == nil {
		return key.Null, false, false
	}
	return node.handle, node.handle != key.Null, len(node.children) > 0
}

func (t *seqTree) walk(keys []key.Code) *seqNode {
	node := t.root
	for _, k := range keys {
		child, ok := node.children[k]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// BindKey routes k to cmd.
func (h *Host) BindKey(k key.Code, cmd string, args ...string) {
	if k == key.CtrlH && host.VarTruthy(h, VarCtrlHIsBackspace) {
		k = key.Backspace
	}
	h.bindings[k] = binding{cmd: cmd, args: append([]string(nil), args...)}
}

// UnbindKey removes the binding of k.
func (h *Host) UnbindKey(k key.Code) {
	delete(h.bindings, k)
}

// AddKeySequence registers seq and returns its virtual code.
func (h *Host) AddKeySequence(seq key.Sequence) key.Code {
	return h.seqs.insert(seq)
}

// LookupKeySequence returns the virtual code of seq.
func (h *Host) LookupKeySequence(seq key.Sequence) (key.Code, bool) {
	return h.seqs.lookup(seq)
}

// DeleteKeySequence releases a virtual code.
func (h *Host) DeleteKeySequence(k key.Code) {
	h.seqs.remove(k)
}

// Binding returns what k is bound to.
func (h *Host) Binding(k key.Code) (cmd string, args []string, ok bool) {
	b, ok := h.bindings[k]
	if !ok {
		return "", nil, false
	}
	return b.cmd, append([]string(nil), b.args...), true
}

// Feed delivers one key. Keys that start a registered sequence are held
// until the sequence completes or can no longer match.
func (h *Host) Feed(k key.Code) {
	if k == key.CtrlH && host.VarTruthy(h, VarCtrlHIsBackspace) {
		k = key.Backspace
	}
	h.pending = append(h.pending, k)
	h.resolve(false)
}

// FeedRune delivers a character. Non-ASCII characters arrive as MByte.
func (h *Host) FeedRune(r rune) {
	if r < 0x80 {
		h.Feed(key.Code(r))
		return
	}
	h.mbyte = r
	h.Feed(key.MByte)
}

// FeedKeys delivers every key of seq.
func (h *Host) FeedKeys(seq key.Sequence) {
	for _, k := range seq {
		h.Feed(k)
	}
}

// Type delivers every character of s.
func (h *Host) Type(s string) {
	for _, r := range s {
		h.FeedRune(r)
	}
}

// Flush dispatches keys held for an incomplete sequence.
func (h *Host) Flush() {
	h.resolve(true)
}

// Pending returns the keys held for an incomplete sequence.
func (h *Host) Pending() key.Sequence {
	return key.Sequence(h.pending).Clone()
}

func (h *Host) resolve(flush bool) {
	for len(h.pending) > 0 {
		handle, exact, prefix := h.seqs.match(h.pending)
		switch {
		case prefix && !flush:
			return
		case exact:
			h.pending = h.pending[:0]
			h.dispatch(handle)
		default:
			n, handle := h.longestMatch()
			if n == 0 {
				n, handle = 1, h.pending[0]
			}
			h.pending = append(h.pending[:0], h.pending[n:]...)
			h.dispatch(handle)
		}
	}
}

// longestMatch returns the length and handle of the longest held prefix
// that completes a sequence, or 0 if none does.
func (h *Host) longestMatch() (int, key.Code) {
	for n := len(h.pending) - 1; n >= 1; n-- {
		if handle, exact, _ := h.seqs.match(h.pending[:n]); exact {
			return n, handle
		}
	}
	return 0, key.Null
}

func (h *Host) dispatch(k key.Code) {
	b, ok := h.bindings[k]
	if !ok {
		h.logger.Debug("unbound key %s", k)
		return
	}
	h.Exec(b.cmd, b.args...)
}
