package journal

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/pkg/quest"
	"github.com/jwebster45206/quest-engine/pkg/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one recorded quest notification.
type Entry struct {
	Quest  string
	Event  string // quest.EventCompleted, quest.EventFailed or quest.EventRequirementMet
	Detail string // Description of the requirement or failure method, if any
	At     time.Time
}

// Title renders the event name for display, e.g. "Requirement Met".
func (e Entry) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(e.Event, "_", " "))
}

func (e Entry) String() string {
	line := fmt.Sprintf("[%s] %s: %s", e.At.Format("15:04:05"), e.Title(), e.Quest)
	if e.Detail != "" {
		line += " (" + e.Detail + ")"
	}
	return line
}

// Journal records quest notifications in the order they happen and logs each one.
type Journal struct {
	logger  *slog.Logger
	entries []Entry
	watched map[*quest.Quest]bool
	now     func() time.Time
}

func New(logger *slog.Logger) *Journal {
	return &Journal{
		logger:  logger,
		entries: make([]Entry, 0),
		watched: make(map[*quest.Quest]bool),
		now:     time.Now,
	}
}

// Watch subscribes to every notification of q. Watching the same quest twice
// is a no-op.
func (j *Journal) Watch(q *quest.Quest) {
	if j.watched[q] {
		return
	}
	j.watched[q] = true

	q.OnRequirementMet(func(r *quest.Requirement) {
		j.record(q, quest.EventRequirementMet, r.Description)
	})
	q.OnCompleted(func() {
		j.record(q, quest.EventCompleted, "")
	})
	q.OnFailed(func(f *quest.FailureMethod) {
		j.record(q, quest.EventFailed, f.Description)
	})
}

// WatchEnvironment watches every quest held by env's entities.
func (j *Journal) WatchEnvironment(env *world.Environment) {
	for _, q := range env.Quests() {
		j.Watch(q)
	}
}

func (j *Journal) record(q *quest.Quest, event, detail string) {
	e := Entry{Quest: q.Name, Event: event, Detail: detail, At: j.now()}
	j.entries = append(j.entries, e)

	log := logger.WithQuest(j.logger, q).With("event", event)
	switch event {
	case quest.EventFailed:
		log.Warn("Quest failed", "failure_method", detail)
	case quest.EventCompleted:
		log.Info("Quest completed")
	default:
		log.Debug("Quest requirement met", "requirement", detail)
	}
}

// Entries returns a copy of everything recorded so far.
func (j *Journal) Entries() []Entry {
	return slices.Clone(j.entries)
}

// Len is the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) String() string {
	var b strings.Builder
	for _, e := range j.entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}
