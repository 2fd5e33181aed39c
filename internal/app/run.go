package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/renderer/backend"
)

// RunHeadless feeds a key string to the host, as if typed, and returns the
// buffer text. Keys held for an incomplete sequence are flushed at the
// end.
func (a *Application) RunHeadless(keys string) (string, error) {
	seq, err := key.ParseKeys(keys)
	if err != nil {
		return "", err
	}
	a.host.FeedKeys(seq)
	a.host.Flush()
	return a.host.Text(), nil
}

// Run runs the interactive loop on the controlling terminal until a quit
// command.
func (a *Application) Run() error {
	term, err := backend.NewTerminal()
	if err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	if err := term.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer term.Shutdown()

	// Leave the loop cleanly so the terminal is restored.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		if _, ok := <-signals; ok {
			term.Interrupt()
		}
	}()

	return a.RunOn(term)
}

// RunOn runs the interactive loop on an initialized terminal.
func (a *Application) RunOn(term *backend.Terminal) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	a.term = term
	a.host.SetPrompt(a.prompt)
	defer a.host.SetPrompt(nil)
	a.resize(term.Size())

	for !a.quit {
		term.Draw(a.host)
		ev := term.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			a.feed(ev)
		case backend.EventResize:
			a.resize(ev.Width, ev.Height)
		case backend.EventInterrupt:
			a.logger.Debug("interrupted")
			return nil
		}
	}
	a.logger.Info("quit")
	return nil
}

// feed delivers the codes of a key event to the host.
func (a *Application) feed(ev backend.Event) {
	for _, c := range ev.Codes {
		if c == key.MByte {
			a.host.FeedRune(ev.MByte)
			continue
		}
		a.host.Feed(c)
	}
}

// resize makes a page one screen of text.
func (a *Application) resize(_, height int) {
	if height > 1 {
		a.host.Frame().SetHeight(height - 1)
	}
}

// prompt reads a command line on the status line. Enter accepts it; Esc,
// ctrl-c or a backspace on an empty line cancels it.
func (a *Application) prompt() (string, bool) {
	var line []rune
	for {
		a.term.DrawPrompt(":" + string(line))
		ev := a.term.PollEvent()
		switch ev.Type {
		case backend.EventInterrupt:
			a.quit = true
			return "", false
		case backend.EventKey:
		default:
			continue
		}

		for _, c := range ev.Codes {
			switch {
			case c == key.Enter:
				return string(line), true
			case c == key.Esc, c == key.CtrlC:
				return "", false
			case c == key.Backspace, c == key.CtrlH:
				if len(line) == 0 {
					return "", false
				}
				line = line[:len(line)-1]
			case c == key.MByte:
				line = append(line, ev.MByte)
			case c.IsPrint():
				line = append(line, rune(c))
			}
		}
	}
}
