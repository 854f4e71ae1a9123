package quest

import "github.com/jwebster45206/quest-engine/pkg/events"

const (
	EventCompleted      = "completed"
	EventFailed         = "failed"
	EventRequirementMet = "requirement_met"
)

// Requirement is a single condition that must be completed to complete a quest.
type Requirement struct {
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`

	dispatcher *events.Dispatcher
}

// NewRequirement creates an incomplete requirement. It emits "completed".
func NewRequirement(description string) *Requirement {
	return &Requirement{
		Description: description,
		dispatcher:  events.NewDispatcher(EventCompleted),
	}
}

// MarkComplete completes the requirement and emits "completed".
// Each call emits again.
func (r *Requirement) MarkComplete() {
	r.IsComplete = true
	r.notifier().Emit(EventCompleted, nil)
}

// Events lists the notifications a requirement emits.
func (r *Requirement) Events() []string { return r.notifier().Events() }

// Bind attaches a handler to one of the requirement's notifications.
func (r *Requirement) Bind(name string, h events.Handler) error {
	return r.notifier().Bind(name, h)
}

// notifier creates the dispatcher on first use so a Requirement literal works.
func (r *Requirement) notifier() *events.Dispatcher {
	if r.dispatcher == nil {
		r.dispatcher = events.NewDispatcher(EventCompleted)
	}
	return r.dispatcher
}

// Reset clears the completion flag without notifying anyone.
func (r *Requirement) Reset() {
	r.IsComplete = false
}

// FailureMethod is a condition that fails its quest outright when triggered.
type FailureMethod struct {
	Description string `json:"description"`
	IsFailed    bool   `json:"is_failed"`

	dispatcher *events.Dispatcher
}

// NewFailureMethod creates an untriggered failure method. It emits "failed".
func NewFailureMethod(description string) *FailureMethod {
	return &FailureMethod{
		Description: description,
		dispatcher:  events.NewDispatcher(EventFailed),
	}
}

// MarkFailed triggers the failure method and emits "failed". There is no way back.
func (f *FailureMethod) MarkFailed() {
	f.IsFailed = true
	f.notifier().Emit(EventFailed, nil)
}

// Events lists the notifications a failure method emits.
func (f *FailureMethod) Events() []string { return f.notifier().Events() }

// Bind attaches a handler to one of the failure method's notifications.
func (f *FailureMethod) Bind(name string, h events.Handler) error {
	return f.notifier().Bind(name, h)
}

func (f *FailureMethod) notifier() *events.Dispatcher {
	if f.dispatcher == nil {
		f.dispatcher = events.NewDispatcher(EventFailed)
	}
	return f.dispatcher
}
