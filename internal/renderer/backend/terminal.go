package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/xul/internal/input/key"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. MByte is the character behind a key.MByte code.
	Codes []key.Code
	MByte rune

	// Resize event fields
	Width, Height int
}

// Terminal draws the reference host on a tcell screen and turns terminal
// input into key codes.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// top is the first buffer line shown.
	top int
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend on s, e.g. a
// simulation screen.
func NewTerminalWithScreen(s tcell.Screen) *Terminal {
	return &Terminal{screen: s, top: 1}
}

// Init initializes the screen. It must be called before anything else.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Interrupt wakes a blocked PollEvent with an EventInterrupt.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

// PollEvent waits for the next terminal event.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// convertEvent converts tcell events to our Event type. A nil event means
// the screen was finalized.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventInterrupt}
	case *tcell.EventKey:
		codes, mbyte := key.FromTcell(e)
		if len(codes) == 0 {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Codes: codes, MByte: mbyte}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	default:
		return Event{Type: EventNone}
	}
}
