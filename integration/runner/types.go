package runner

import (
	"time"
)

// Step actions
const (
	ActionComplete = "complete" // Mark a requirement complete
	ActionFail     = "fail"     // Trigger a failure method
	ActionReset    = "reset"    // Reset a requirement without notifying
)

// TestSuite is a scripted playthrough of one world file.
type TestSuite struct {
	Name  string     `yaml:"name"`
	World string     `yaml:"world"` // Path to the world file, relative to the case file
	Steps []TestStep `yaml:"steps"`
}

// TestStep applies one action and checks the outcome.
type TestStep struct {
	Name         string       `yaml:"name,omitempty"`
	Action       string       `yaml:"action"`
	Quest        string       `yaml:"quest"`  // Quest key in the world file
	Target       string       `yaml:"target"` // Requirement or failure method description
	Expectations Expectations `yaml:"expect"`
}

// Expectations defines what to check after a test step executes.
type Expectations struct {
	// Quest key -> quest.Status* string
	QuestStatus map[string]string `yaml:"quest_status,omitempty"`
	// Notifications emitted during this step, in order, as "quest name: event"
	Events []string `yaml:"events,omitempty"`
	// Set to true to require that the step emitted nothing
	NoEvents bool `yaml:"no_events,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName string
	StepName string
	Success  bool
	Error    error
	Duration time.Duration
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Suite    TestSuite
	Results  []TestResult
	Error    error
	Duration time.Duration
}

// Passed counts successful steps.
func (r TestRunResult) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}
