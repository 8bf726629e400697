package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/csheth/stackedit/internal/config"
	"github.com/csheth/stackedit/internal/editor"
	"github.com/csheth/stackedit/internal/screen"
	"github.com/csheth/stackedit/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config file (default $STACKEDIT_CONFIG or the user config dir)")
	backend := flag.String("backend", "", "display backend: tcell or tea (overrides the config file)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer (tea backend)")
	noHighlight := flag.Bool("no-highlight", false, "disable syntax colouring of stack entries")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("stackedit needs an interactive terminal on stdin")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *noAltScreen {
		cfg.AltScreen = boolRef(false)
	}
	if *noHighlight {
		cfg.Highlight = boolRef(false)
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Println("log setup failed:", err)
		os.Exit(1)
	}

	err = run(cfg)
	closeLog()
	if err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

// loadConfig reads an explicit path strictly; the default location may be
// absent.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	return config.Load(config.DefaultPath(), false)
}

func boolRef(v bool) *bool { return &v }

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "stackedit")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func run(cfg *config.Config) error {
	entries, err := cfg.Entries()
	if err != nil {
		return err
	}
	initial := editor.New(cfg.Mode(), entries...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := uuid.New().String()
	log.Printf("[main] session %s starting (backend=%s, mode=%s, prelude=%d)", session, cfg.Backend, initial.Mode(), initial.Len())

	var final editor.State
	switch cfg.Backend {
	case config.BackendTea:
		final, err = runTea(ctx, cfg, initial)
	default:
		final, err = runTcell(ctx, cfg, initial)
	}
	if err != nil {
		log.Printf("[main] session %s failed: %v", session, err)
		return err
	}
	log.Printf("[main] session %s finished (mode=%s, entries=%d)", session, final.Mode(), final.Len())
	return nil
}

func runTcell(ctx context.Context, cfg *config.Config, initial editor.State) (editor.State, error) {
	display, err := screen.New(screen.Options{
		Highlight: *cfg.Highlight,
		Theme:     cfg.Theme,
	})
	if err != nil {
		return initial, err
	}
	return editor.Run(ctx, display, initial, editor.Options{PollInterval: cfg.PollInterval.Duration})
}

func runTea(ctx context.Context, cfg *config.Config, initial editor.State) (editor.State, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if *cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Initial:   initial,
			Highlight: *cfg.Highlight,
			Theme:     cfg.Theme,
		}),
		opts...,
	)

	finalModel, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return initial, err
	}
	final, _ := tui.State(finalModel)
	return final, nil
}
