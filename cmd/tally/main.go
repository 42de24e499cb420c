package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avelikan/tally/internal/config"
	"github.com/avelikan/tally/internal/storage"
	"github.com/avelikan/tally/internal/store"
	"github.com/avelikan/tally/internal/tui"
	"github.com/avelikan/tally/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "tally needs an interactive terminal")
		os.Exit(1)
	}

	ctx := context.Background()

	kv, err := openStorage(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open storage: %v\n", err)
		os.Exit(1)
	}
	defer func() { util.LogError("close storage", kv.Close()) }()

	timers := store.New(kv)
	defer timers.Close()
	timers.Load(ctx)

	p := tea.NewProgram(tui.NewModel(ctx, timers, kv), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		os.Exit(1)
	}
}

// openStorage ensures the data directory exists and opens the task
// database inside it.
func openStorage(ctx context.Context) (*storage.Store, error) {
	dataRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return storage.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
}
