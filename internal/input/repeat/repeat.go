// Package repeat keeps the state behind the "." command: the last motion,
// the last change made after it, and the keys typed in the most recent
// insert session.
//
// A Recorder is not safe for concurrent use. It is driven from the key
// dispatch loop only.
package repeat

import (
	"errors"

	"github.com/dshills/xul/internal/input/key"
)

// Key used to repeat the last change.
const Key key.Code = '.'

// Replay errors
var (
	ErrNothingToRepeat = errors.New("nothing to repeat")
	ErrNestedReplay    = errors.New("repeat already in progress")
)

// NormalizeNav returns the form a motion key is remembered in: find
// operators keep their case since it encodes direction, other letters are
// lowercased, everything else is kept as is.
func NormalizeNav(k key.Code) key.Code {
	switch k {
	case 'f', 'F', 't', 'T':
		return k
	}
	return k.Lower()
}

// IsInsertEntry returns true for actions whose repeat replays the recorded
// insert session.
func IsInsertEntry(action key.Code) bool {
	switch action {
	case 'a', 'A', 'i':
		return true
	}
	return false
}

// Recorder holds the repeat state.
type Recorder struct {
	lastNav    key.Code
	saveNav    key.Code
	saveAction key.Code
	insertKeys []key.Code
	replaying  bool
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// SetNav remembers k as the most recent motion.
func (r *Recorder) SetNav(k key.Code) {
	r.lastNav = NormalizeNav(k)
}

// LastNav returns the most recent motion key.
func (r *Recorder) LastNav() key.Code {
	return r.lastNav
}

// SaveAction pairs action with the most recent motion as the change to
// repeat. The repeat key itself is never saved.
func (r *Recorder) SaveAction(action key.Code) {
	if action == Key {
		return
	}
	r.saveNav = r.lastNav
	r.saveAction = action
}

// Saved returns the saved motion and action.
func (r *Recorder) Saved() (nav, action key.Code) {
	return r.saveNav, r.saveAction
}

// HasAction returns true once an action has been saved.
func (r *Recorder) HasAction() bool {
	return r.saveAction != key.Null
}

// BeginInsert starts a new insert session. The previous session is kept
// while replaying, since that is what is being replayed.
func (r *Recorder) BeginInsert() {
	if r.replaying {
		return
	}
	r.insertKeys = r.insertKeys[:0]
}

// RecordInsert appends k to the insert session unless replaying.
func (r *Recorder) RecordInsert(k key.Code) {
	if r.replaying {
		return
	}
	r.insertKeys = append(r.insertKeys, k)
}

// InsertKeys returns a copy of the keys of the last insert session.
func (r *Recorder) InsertKeys() []key.Code {
	out := make([]key.Code, len(r.insertKeys))
	copy(out, r.insertKeys)
	return out
}

// Replaying returns true while Replay is running.
func (r *Recorder) Replaying() bool {
	return r.replaying
}

// Replay runs fn with recording suppressed. It refuses to start when there
// is nothing to repeat or when called from inside another replay.
func (r *Recorder) Replay(fn func()) error {
	if r.replaying {
		return ErrNestedReplay
	}
	if !r.HasAction() {
		return ErrNothingToRepeat
	}

	r.replaying = true
	defer func() { r.replaying = false }()

	fn()
	return nil
}

// Reset clears all state.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
