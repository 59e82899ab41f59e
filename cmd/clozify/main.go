package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/iw2rmb/clozify/cloze"
	"github.com/iw2rmb/clozify/editor"
	"github.com/iw2rmb/clozify/internal/config"
	"github.com/iw2rmb/clozify/internal/logging"
)

const sampleText = "The capital of France is Paris.\n\n" +
	"Select text with shift+arrows, then press shift+meta+z (alt+Z) to clozify it.\n" +
	"Shift+meta+u (alt+U) removes markers from the selection or the whole note.\n" +
	"Ctrl+Z undoes, ctrl+q quits and prints the result."

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

type model struct {
	editor editor.Model
	log    *zap.Logger

	width   int
	status  string
	clozes  int
	aborted bool
}

func newModel(text string, opt cloze.Options, log *zap.Logger) model {
	m := model{log: log, status: "ready"}
	m.editor = editor.New(editor.Config{
		Text:         text,
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		Cloze:        &opt,
		Clipboard:    &editor.Register{},
	})
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "esc":
			m.aborted = true
			return m, tea.Quit
		}
	case editor.InputMsg:
		ch := msg.Event.Change
		if msg.Kind == editor.InputClozify {
			m.clozes++
		}
		m.status = fmt.Sprintf("%s (%s %+d) at %d:%d, %d clozes",
			msg.Kind, ch.Source, ch.RuneDelta(),
			msg.Event.Cursor.Row+1, msg.Event.Cursor.GraphemeCol+1,
			len(cloze.ScanIDs(msg.Event.Text)))
		m.log.Info(msg.Kind.String(),
			zap.Stringer("source", ch.Source),
			zap.Uint64("version_before", ch.VersionBefore),
			zap.Uint64("version_after", ch.VersionAfter),
			zap.Int("rune_delta", ch.RuneDelta()),
			zap.Int("row", msg.Event.Cursor.Row),
			zap.Int("col", msg.Event.Cursor.GraphemeCol),
			zap.Ints("ids", cloze.ScanIDs(msg.Event.Text)),
		)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := m.status
	if m.width > 0 {
		status = runewidth.Truncate(status, m.width, "…")
	}
	return m.editor.View() + "\n" + statusStyle.Render(status)
}

func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return sampleText, nil
	case "-":
		data, err = io.ReadAll(os.Stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSuffix(text, "\n"), nil
}

var errAborted = errors.New("aborted")

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("clozify", flag.ContinueOnError)
	tag := fs.String("tag", cfg.Cloze.Tag, "tag appended when absent (empty disables)")
	sep := fs.String("sep", cfg.Cloze.Separator, "separator written before an appended tag")
	noID := fs.Bool("no-id", !cfg.Cloze.AssignID, "insert unnumbered opening markers")
	logFile := fs.String("log", cfg.LogFile, "append JSON logs to this file")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: clozify [flags] [file|-]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		_, err := fmt.Fprintln(stdout, versionLine())
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("at most one input file")
	}

	log, err := logging.New(*logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	input := fs.Arg(0)
	text, err := readInput(input)
	if err != nil {
		return err
	}

	opt := cloze.Options{Tag: *tag, Separator: *sep, AssignID: !*noID}
	log.Info("start", zap.String("input", input), zap.String("tag", opt.Tag), zap.Bool("assign_id", opt.AssignID))

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if input == "-" {
		opts = append(opts, tea.WithInputTTY())
	}
	final, err := tea.NewProgram(newModel(text, opt, log), opts...).Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	fm := final.(model)
	if fm.aborted {
		log.Info("aborted")
		return errAborted
	}
	log.Info("done", zap.Int("clozes", fm.clozes))
	_, err = fmt.Fprintln(stdout, fm.editor.Buffer().Text())
	return err
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errAborted):
		os.Exit(130)
	default:
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
