package worldfile

import (
	"fmt"

	"github.com/jwebster45206/quest-engine/pkg/quest"
	"github.com/jwebster45206/quest-engine/pkg/world"
)

// World is a built environment plus lookups from file keys to the objects
// created for them.
type World struct {
	Name        string
	Description string
	Env         *world.Environment

	Items     map[string]*world.Item
	Locations map[string]*world.Location
	Entities  map[string]*world.Entity
	Quests    map[string]*quest.Quest

	questKeys []string
}

// QuestKeys returns quest keys in sorted order.
func (w *World) QuestKeys() []string {
	return append([]string(nil), w.questKeys...)
}

// Build validates s and creates its objects. Objects are added to the
// environment in sorted key order. Entities naming the same quest key share
// one quest.
func Build(s *Spec) (*World, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	w := &World{
		Name:        s.Name,
		Description: s.Description,
		Env:         world.NewEnvironment(),
		Items:       make(map[string]*world.Item, len(s.Items)),
		Locations:   make(map[string]*world.Location, len(s.Locations)),
		Entities:    make(map[string]*world.Entity, len(s.Entities)),
		Quests:      make(map[string]*quest.Quest, len(s.Quests)),
		questKeys:   sortedKeys(s.Quests),
	}

	for _, key := range sortedKeys(s.Items) {
		is := s.Items[key]
		item := world.NewItem(is.Name, is.Description)
		item.Unique = is.Unique
		w.Items[key] = item
		w.Env.AddItem(item)
	}

	locKeys := sortedKeys(s.Locations)
	for _, key := range locKeys {
		ls := s.Locations[key]
		loc := world.NewLocation(ls.Name, ls.Description, nil)
		w.Locations[key] = loc
		w.Env.AddLocation(loc)
	}
	for _, key := range locKeys {
		if parent := s.Locations[key].Parent; parent != "" {
			w.Locations[key].Parent = w.Locations[parent]
		}
	}

	for _, key := range w.questKeys {
		qs := s.Quests[key]
		reqs := make([]*quest.Requirement, 0, len(qs.Requirements))
		for _, r := range qs.Requirements {
			reqs = append(reqs, quest.NewRequirement(r))
		}
		fails := make([]*quest.FailureMethod, 0, len(qs.FailureMethods))
		for _, f := range qs.FailureMethods {
			fails = append(fails, quest.NewFailureMethod(f))
		}
		q, err := quest.NewQuest(qs.Name, qs.Description, reqs, fails)
		if err != nil {
			return nil, fmt.Errorf("failed to build quest %s: %w", key, err)
		}
		w.Quests[key] = q
	}

	for _, key := range sortedKeys(s.Entities) {
		es := s.Entities[key]
		entity := world.NewEntity(es.Name, es.Description)
		for _, qk := range es.Quests {
			entity.AddQuest(w.Quests[qk])
		}
		w.Entities[key] = entity
		w.Env.AddEntity(entity)
	}

	return w, nil
}

// LoadWorld loads, validates and builds the world file at path.
func LoadWorld(path string) (*World, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	w, err := Build(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}
