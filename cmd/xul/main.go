// Package main is the entry point for xul, a modal key interpreter on a
// small in-memory editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/xul/internal/app"
	"github.com/dshills/xul/internal/input/keymap"
	"github.com/dshills/xul/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type cliOptions struct {
	app        app.Options
	keys       string
	headless   bool
	dumpKeymap bool
	logFile    string
}

func run() int {
	cli := parseFlags()

	if cli.logFile != "" {
		f, err := os.OpenFile(cli.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		cli.app.LogOutput = f
	} else if cli.headless || cli.dumpKeymap {
		cli.app.LogOutput = os.Stderr
	}

	application, err := app.New(cli.app)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	switch {
	case cli.dumpKeymap:
		return dumpKeymap(application, os.Stdout)
	case cli.headless:
		return runHeadless(application, cli.keys, os.Stdout)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal; use -keys for headless runs")
		return 1
	}
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runHeadless(a *app.Application, keys string, w io.Writer) int {
	text, err := a.RunHeadless(keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(w, text)
	for _, msg := range a.Host().Errors() {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	return 0
}

func dumpKeymap(a *app.Application, w io.Writer) int {
	doc, err := keymap.Export(a.Engine().Tables()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = w.Write(doc)
	return 0
}

func parseFlags() cliOptions {
	var cli cliOptions
	var showVersion bool

	flag.StringVar(&cli.app.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&cli.app.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&cli.app.NoConfig, "no-config", false, "Do not read a configuration file")
	flag.StringVar(&cli.app.InitScript, "init", "", "Lua init script (overrides the configuration)")
	flag.Func("keymap", "Keymap file to load (JSON or YAML, repeatable)", func(s string) error {
		cli.app.Keymaps = append(cli.app.Keymaps, s)
		return nil
	})
	flag.StringVar(&cli.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&cli.logFile, "log", "", "Write logs to this file")
	flag.StringVar(&cli.keys, "keys", "", "Feed these keys without a terminal and print the buffer")
	flag.BoolVar(&cli.dumpKeymap, "dump-keymap", false, "Print every mode binding as keymap JSON")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xul - modal key interpreter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: xul [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xul notes.txt                       Edit a file\n")
		fmt.Fprintf(os.Stderr, "  xul -keys 'i h i esc' notes.txt     Type keys and print the result\n")
		fmt.Fprintf(os.Stderr, "  xul -keymap keys.yaml -dump-keymap  Show the bindings a keymap adds\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("xul %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if cli.app.LogLevel != "" && !logging.ValidLevel(cli.app.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cli.app.LogLevel)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "keys" {
			cli.headless = true
		}
	})

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cli.app.File = args[0]
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %s\n", strings.Join(args, " "))
		os.Exit(1)
	}

	return cli
}
