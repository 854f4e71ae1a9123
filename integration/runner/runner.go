package runner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwebster45206/quest-engine/internal/journal"
	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/pkg/quest"
	"github.com/jwebster45206/quest-engine/pkg/worldfile"
	"gopkg.in/yaml.v3"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner plays scripted test suites against freshly built worlds.
type Runner struct {
	Logger            *slog.Logger
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		Logger:            logger,
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a YAML file. A relative world path is
// resolved against the suite file's directory.
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := yaml.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse YAML in %s: %w", filename, err)
	}

	if suite.World != "" && !filepath.IsAbs(suite.World) {
		suite.World = filepath.Join(filepath.Dir(filename), suite.World)
	}

	return suite, nil
}

// RunSuite builds the suite's world and runs every step against it.
func (r *Runner) RunSuite(suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{Suite: suite}

	w, err := worldfile.LoadWorld(suite.World)
	if err != nil {
		result.Error = fmt.Errorf("failed to load world: %w", err)
		return result, result.Error
	}

	j := journal.New(r.Logger)
	for _, key := range w.QuestKeys() {
		j.Watch(w.Quests[key])
	}

	r.Logger.Info("Running suite", "suite", suite.Name, "world", w.Name, "steps", len(suite.Steps))

	for i, step := range suite.Steps {
		res := r.runStep(w, j, suite.Name, i, step)
		result.Results = append(result.Results, res)

		if !res.Success {
			logger.WithError(r.Logger, res.Error).Warn("Step failed", "suite", suite.Name, "step", res.StepName)
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (r *Runner) runStep(w *worldfile.World, j *journal.Journal, suiteName string, index int, step TestStep) TestResult {
	start := time.Now()
	name := step.Name
	if name == "" {
		name = fmt.Sprintf("step %d", index+1)
	}
	res := TestResult{TestName: suiteName, StepName: name}

	before := j.Len()
	if err := applyAction(w, step); err != nil {
		res.Error = err
		res.Duration = time.Since(start)
		return res
	}

	emitted := j.Entries()[before:]
	if err := checkExpectations(w, step.Expectations, emitted); err != nil {
		res.Error = err
	} else {
		res.Success = true
	}

	res.Duration = time.Since(start)
	return res
}

func applyAction(w *worldfile.World, step TestStep) error {
	q, ok := w.Quests[step.Quest]
	if !ok {
		return fmt.Errorf("unknown quest %q", step.Quest)
	}

	switch step.Action {
	case ActionComplete, ActionReset:
		req := findRequirement(q, step.Target)
		if req == nil {
			return fmt.Errorf("quest %q has no requirement %q", step.Quest, step.Target)
		}
		if step.Action == ActionComplete {
			req.MarkComplete()
		} else {
			req.Reset()
		}
	case ActionFail:
		fm := findFailureMethod(q, step.Target)
		if fm == nil {
			return fmt.Errorf("quest %q has no failure method %q", step.Quest, step.Target)
		}
		fm.MarkFailed()
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}

func findRequirement(q *quest.Quest, description string) *quest.Requirement {
	for _, r := range q.Requirements() {
		if strings.EqualFold(r.Description, description) {
			return r
		}
	}
	return nil
}

func findFailureMethod(q *quest.Quest, description string) *quest.FailureMethod {
	for _, f := range q.FailureMethods() {
		if strings.EqualFold(f.Description, description) {
			return f
		}
	}
	return nil
}

func checkExpectations(w *worldfile.World, exp Expectations, emitted []journal.Entry) error {
	for key, want := range exp.QuestStatus {
		q, ok := w.Quests[key]
		if !ok {
			return fmt.Errorf("expected status for unknown quest %q", key)
		}
		if got := q.Status(); got != want {
			return fmt.Errorf("expected quest %s to be %s, got %s", key, want, got)
		}
	}

	got := make([]string, 0, len(emitted))
	for _, e := range emitted {
		got = append(got, e.Quest+": "+e.Event)
	}

	if exp.NoEvents && len(got) > 0 {
		return fmt.Errorf("expected no events, got %v", got)
	}

	if len(exp.Events) > 0 {
		if len(got) != len(exp.Events) {
			return fmt.Errorf("expected events %v, got %v", exp.Events, got)
		}
		for i := range got {
			if got[i] != exp.Events[i] {
				return fmt.Errorf("expected event %d to be %q, got %q", i, exp.Events[i], got[i])
			}
		}
	}

	return nil
}
