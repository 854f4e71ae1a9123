package quest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jwebster45206/quest-engine/pkg/events"
)

// ErrInvalidArgument is returned when a quest is constructed from bad inputs.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	_ events.Emitter = (*Quest)(nil)
	_ events.Emitter = (*Requirement)(nil)
	_ events.Emitter = (*FailureMethod)(nil)
)

// Status strings derived from a quest's flags.
const (
	StatusPending         = "pending"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
	StatusCompletedFailed = "completed+failed"
)

// Quest is a named set of requirements and failure methods.
// It is complete once every requirement is complete, and failed once any failure
// method fires. The two flags are independent; a completed quest can still fail.
type Quest struct {
	Name        string
	Description string

	requirements   []*Requirement
	failureMethods []*FailureMethod
	isComplete     bool
	isFailed       bool
	dispatcher     *events.Dispatcher
}

// NewQuest builds a quest and subscribes it to every requirement and failure method.
// The slices are copied; the requirements and failure methods themselves are shared
// with the caller.
func NewQuest(name, description string, requirements []*Requirement, failureMethods []*FailureMethod) (*Quest, error) {
	for i, r := range requirements {
		if r == nil {
			return nil, fmt.Errorf("quest %q: requirement %d is nil: %w", name, i, ErrInvalidArgument)
		}
	}
	for i, f := range failureMethods {
		if f == nil {
			return nil, fmt.Errorf("quest %q: failure method %d is nil: %w", name, i, ErrInvalidArgument)
		}
	}

	q := &Quest{
		Name:           name,
		Description:    description,
		requirements:   slices.Clone(requirements),
		failureMethods: slices.Clone(failureMethods),
		dispatcher:     events.NewDispatcher(EventCompleted, EventFailed, EventRequirementMet),
	}
	q.isComplete = q.allRequirementsComplete()

	for _, r := range q.requirements {
		// Declared on every requirement, so Bind cannot fail here.
		_ = r.Bind(EventCompleted, func(events.Event) { q.requirementMet(r) })
	}
	for _, f := range q.failureMethods {
		_ = f.Bind(EventFailed, func(events.Event) { q.failed(f) })
	}

	return q, nil
}

// Requirements returns the quest's requirements in construction order.
// The slice is a copy; the quest's own list never changes.
func (q *Quest) Requirements() []*Requirement {
	return append([]*Requirement{}, q.requirements...)
}

// FailureMethods returns the quest's failure methods in construction order.
func (q *Quest) FailureMethods() []*FailureMethod {
	return append([]*FailureMethod{}, q.failureMethods...)
}

// IsComplete reports whether every requirement was complete at the last evaluation.
func (q *Quest) IsComplete() bool { return q.isComplete }

// IsFailed reports whether any failure method has fired.
func (q *Quest) IsFailed() bool { return q.isFailed }

// Status summarises both flags.
func (q *Quest) Status() string {
	switch {
	case q.isComplete && q.isFailed:
		return StatusCompletedFailed
	case q.isFailed:
		return StatusFailed
	case q.isComplete:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// Events lists the notifications a quest emits.
func (q *Quest) Events() []string { return q.dispatcher.Events() }

// Bind attaches a handler to a quest notification by name.
func (q *Quest) Bind(name string, h events.Handler) error {
	return q.dispatcher.Bind(name, h)
}

// OnCompleted registers fn for the "completed" notification.
func (q *Quest) OnCompleted(fn func()) {
	_ = q.dispatcher.Bind(EventCompleted, func(events.Event) { fn() })
}

// OnFailed registers fn for the "failed" notification.
func (q *Quest) OnFailed(fn func(*FailureMethod)) {
	_ = q.dispatcher.Bind(EventFailed, func(e events.Event) { fn(e.Payload.(*FailureMethod)) })
}

// OnRequirementMet registers fn for the "requirement_met" notification.
func (q *Quest) OnRequirementMet(fn func(*Requirement)) {
	_ = q.dispatcher.Bind(EventRequirementMet, func(e events.Event) { fn(e.Payload.(*Requirement)) })
}

// requirementMet recomputes completion over all requirements, not just r.
func (q *Quest) requirementMet(r *Requirement) {
	q.isComplete = q.allRequirementsComplete()
	q.dispatcher.Emit(EventRequirementMet, r)
	if q.isComplete {
		q.dispatcher.Emit(EventCompleted, nil)
	}
}

func (q *Quest) failed(f *FailureMethod) {
	q.isFailed = true
	q.dispatcher.Emit(EventFailed, f)
}

func (q *Quest) allRequirementsComplete() bool {
	for _, r := range q.requirements {
		if !r.IsComplete {
			return false
		}
	}
	return true
}
