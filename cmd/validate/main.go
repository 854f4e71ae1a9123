package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jwebster45206/quest-engine/pkg/worldfile"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json|world.yaml> [...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(os.Stdout, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func validateFile(out io.Writer, filename string) error {
	fmt.Fprintf(out, "Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !isValidWorldFilename(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., lost_key.yaml, not lost-key.yaml or LostKey.yaml)", baseName)
	}

	w, err := worldfile.LoadWorld(filename)
	if err != nil {
		return err
	}

	writeSummary(out, w)
	fmt.Fprintln(out, "World file is valid!")
	return nil
}

func writeSummary(out io.Writer, w *worldfile.World) {
	fmt.Fprintf(out, "\n%s\n", w.Name)
	fmt.Fprintf(out, "  %d items, %d locations, %d entities, %d quests\n",
		len(w.Env.Items), len(w.Env.Locations), len(w.Env.Entities), len(w.Quests))

	for _, key := range w.QuestKeys() {
		q := w.Quests[key]
		fmt.Fprintf(out, "  quest %s: %s\n", key, q.Name)
		for _, r := range q.Requirements() {
			fmt.Fprintf(out, "    [ ] %s\n", r.Description)
		}
		for _, f := range q.FailureMethods() {
			fmt.Fprintf(out, "    [x] fails if: %s\n", f.Description)
		}
	}
	fmt.Fprintln(out)
}

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return worldfile.IsValidKey(name)
}
