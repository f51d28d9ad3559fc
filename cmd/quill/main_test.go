package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/layout"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.wrap != layout.WrapNone || opts.tabWidth != 4 || !opts.lineNumbers || !opts.scrollbar {
		t.Fatalf("defaults: got %+v", opts)
	}
	if opts.path != "" || opts.readOnly || opts.tabsAsSpaces {
		t.Fatalf("defaults: got %+v", opts)
	}
}

func TestParseArgs_Flags(t *testing.T) {
	opts, err := parseArgs([]string{"-wrap", "anywhere", "-tab-width", "8", "-spaces", "-line-numbers=false", "-read-only", "notes.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if got, want := opts.wrap, layout.WrapGrapheme; got != want {
		t.Fatalf("wrap: got %v, want %v", got, want)
	}
	if opts.tabWidth != 8 || !opts.tabsAsSpaces || opts.lineNumbers || !opts.readOnly {
		t.Fatalf("flags: got %+v", opts)
	}
	if got, want := opts.path, "notes.txt"; got != want {
		t.Fatalf("path: got %q, want %q", got, want)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-wrap", "sideways"},
		{"-tab-width", "0"},
		{"a.txt", "b.txt"},
		{"-no-such-flag"},
	} {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Fatalf("parseArgs(%q): expected error", args)
		}
	}
	var stderr bytes.Buffer
	if _, err := parseArgs([]string{"-h"}, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h: got %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "usage: quill") {
		t.Fatalf("usage output: got %q", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-version"}, &stdout, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := strings.TrimSpace(stdout.String()), "quill "+quill.BuildString(); got != want {
		t.Fatalf("version: got %q, want %q", got, want)
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := readDocument(path)
	if err != nil || got != "hello\nworld" {
		t.Fatalf("readDocument: got %q, %v", got, err)
	}
	got, err = readDocument(filepath.Join(dir, "missing.txt"))
	if err != nil || got != "" {
		t.Fatalf("missing file: got %q, %v", got, err)
	}
	if _, err := readDocument(dir); err == nil {
		t.Fatalf("reading a directory should fail")
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.log")
	logger, closeLog, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", 1)
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") || !strings.Contains(string(data), "k=1") {
		t.Fatalf("log contents: %q", data)
	}

	if _, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "quill.log")); err == nil {
		t.Fatalf("expected error for unwritable log path")
	}
}

func newTestApp(t *testing.T, path, text string) app {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := newApp(options{path: path, tabWidth: 4, wrap: layout.WrapNone, lineNumbers: true}, text, &editor.MemoryClipboard{}, logger)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	return m.(app)
}

func send(t *testing.T, a app, msg tea.Msg) (app, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(app), cmd
}

func TestApp_EditAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	a := newTestApp(t, path, "abc")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !a.editor.Engine().Modified() {
		t.Fatalf("expected modified after typing")
	}
	if !strings.Contains(a.statusLine(), "[+]") {
		t.Fatalf("status line: %q", a.statusLine())
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if got, want := string(data), "xabc"; got != want {
		t.Fatalf("saved: got %q, want %q", got, want)
	}
	if a.editor.Engine().Modified() {
		t.Fatalf("expected clean after save")
	}
	if !strings.HasPrefix(a.message, "saved ") {
		t.Fatalf("message: got %q", a.message)
	}
}

func TestApp_SaveWithoutPath(t *testing.T) {
	a := newTestApp(t, "", "abc")
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	if got, want := a.message, "no file name"; got != want {
		t.Fatalf("message: got %q, want %q", got, want)
	}
}

func TestApp_FindPrompt(t *testing.T) {
	a := newTestApp(t, "", "xabc abc")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlF})
	if !a.finding || a.editor.Focused() {
		t.Fatalf("ctrl+f should open the prompt and blur the editor")
	}
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bc")})
	if got := a.editor.Buffer().Text(); got != "xabc abc" {
		t.Fatalf("prompt input reached the editor: %q", got)
	}

	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.finding || !a.editor.Focused() {
		t.Fatalf("enter should close the prompt")
	}
	if cmd == nil {
		t.Fatalf("enter should start a search")
	}
	a, _ = send(t, a, cmd())
	if got, want := a.editor.Engine().SelectedText(), "bc"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
	if got := a.editor.Engine().LastQuery(); !got.Wrap || got.Text != "bc" {
		t.Fatalf("last query: got %+v", got)
	}
}

func TestApp_FindPromptEscape(t *testing.T) {
	a := newTestApp(t, "", "abc")
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlF})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.finding || a.editor.Searching() {
		t.Fatalf("esc should close the prompt without searching")
	}
}

func TestApp_QuitKey(t *testing.T) {
	a := newTestApp(t, "", "")
	_, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q did not quit")
	}
}

func TestApp_FindPromptFloatsOverEditor(t *testing.T) {
	a := newTestApp(t, "", "hello")
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlF})

	view := a.View()
	if !strings.Contains(view, "find: ") {
		t.Fatalf("find prompt missing from view:\n%s", view)
	}
	if !strings.Contains(a.statusLine(), "FIND") {
		t.Fatalf("status line: %q", a.statusLine())
	}
	if got, want := len(strings.Split(view, "\n")), 10; got != want {
		t.Fatalf("view lines: got %d, want %d", got, want)
	}
}
