package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jwebster45206/quest-engine/internal/config"
	"github.com/jwebster45206/quest-engine/internal/journal"
	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/pkg/worldfile"
)

const logFileName = "quest-console.log"

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
	cfg := config.Load()

	logOut, closeLog := openLog()
	defer closeLog()
	log := logger.SetupWriter(cfg, logOut)

	path, err := chooseWorld(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	w, err := worldfile.LoadWorld(path)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load world", "path", path)
		fmt.Fprintf(os.Stderr, "Failed to load world: %v\n", err)
		os.Exit(1)
	}
	log.Info("World loaded", "world", w.Name, "path", path, "quests", len(w.Quests))

	j := journal.New(log)
	j.WatchEnvironment(w.Env)
	// Quests no entity holds are still inspectable.
	for _, key := range w.QuestKeys() {
		j.Watch(w.Quests[key])
	}

	p := tea.NewProgram(NewQuestUI(w, j), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openLog sends logs to a file so they do not draw over the UI.
func openLog() (io.Writer, func()) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() {
		_ = f.Close() // Ignore error in defer
	}
}

// chooseWorld returns the world file named on the command line, or asks the
// user to pick one from the configured worlds directory.
func chooseWorld(cfg *config.Config, log *slog.Logger) (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}

	worlds, err := worldfile.List(cfg.WorldsDir, log)
	if err != nil {
		return "", fmt.Errorf("failed to list worlds in %s: %w", cfg.WorldsDir, err)
	}
	if len(worlds) == 0 {
		return "", fmt.Errorf("no world files found in %s", cfg.WorldsDir)
	}

	names := make([]string, 0, len(worlds))
	for name := range worlds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available Worlds:")
	for i, name := range names {
		fmt.Printf("  %d - %s (%s)\n", i+1, name, worlds[name])
	}
	fmt.Print("\nSelect a world by number: ")

	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(names) {
		return "", fmt.Errorf("invalid selection")
	}

	return filepath.Join(cfg.WorldsDir, worlds[names[choice-1]]), nil
}
