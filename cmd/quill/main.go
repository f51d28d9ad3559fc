// Command quill is a small terminal text editor built on the editor
// package.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/layout"
)

type options struct {
	path         string
	wrap         layout.WrapMode
	tabWidth     int
	tabsAsSpaces bool
	lineNumbers  bool
	scrollbar    bool
	logPath      string
	readOnly     bool
	version      bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	var wrap string

	flags := flag.NewFlagSet("quill", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: quill [flags] [file]")
		flags.PrintDefaults()
	}
	flags.StringVar(&wrap, "wrap", "none", "line wrapping: none, word or anywhere")
	flags.IntVar(&opts.tabWidth, "tab-width", 4, "tab stop width in cells")
	flags.BoolVar(&opts.tabsAsSpaces, "spaces", false, "indent with spaces instead of tabs")
	flags.BoolVar(&opts.lineNumbers, "line-numbers", true, "show line numbers")
	flags.BoolVar(&opts.scrollbar, "scrollbar", true, "show a vertical scrollbar")
	flags.StringVar(&opts.logPath, "log", "", "write debug logs to `file`")
	flags.BoolVar(&opts.readOnly, "read-only", false, "open the file without editing")
	flags.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	if flags.NArg() > 1 {
		return options{}, fmt.Errorf("expected at most one file, got %d", flags.NArg())
	}
	opts.path = flags.Arg(0)

	mode, err := layout.ParseWrapMode(wrap)
	if err != nil {
		return options{}, err
	}
	opts.wrap = mode
	if opts.tabWidth <= 0 {
		return options{}, fmt.Errorf("tab width must be positive, got %d", opts.tabWidth)
	}
	return opts, nil
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the UI, so logs never go to
// stderr.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}

func readDocument(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "quill", quill.BuildString())
		return nil
	}

	logger, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	text, err := readDocument(opts.path)
	if err != nil {
		return err
	}

	var clip editor.Clipboard = &editor.MemoryClipboard{}
	if editor.SystemClipboardAvailable() {
		clip = editor.SystemClipboard{}
	}

	logger.Info("starting", "version", quill.Version(), "file", opts.path, "wrap", opts.wrap)
	app := newApp(opts, text, clip, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "quill:", err)
		os.Exit(1)
	}
}
