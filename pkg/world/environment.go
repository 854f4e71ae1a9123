package world

import (
	"github.com/google/uuid"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

// Environment is the realm quests are built and played out in.
// It is a plain container: nothing stops the same object being added twice.
type Environment struct {
	Items     []*Item
	Locations []*Location
	Entities  []*Entity
}

func NewEnvironment() *Environment {
	return &Environment{
		Items:     make([]*Item, 0),
		Locations: make([]*Location, 0),
		Entities:  make([]*Entity, 0),
	}
}

func (env *Environment) AddItem(item *Item) {
	env.Items = append(env.Items, item)
}

func (env *Environment) AddLocation(loc *Location) {
	env.Locations = append(env.Locations, loc)
}

func (env *Environment) AddEntity(entity *Entity) {
	env.Entities = append(env.Entities, entity)
}

// FindItem returns the first item with the given ID.
func (env *Environment) FindItem(id uuid.UUID) (*Item, bool) {
	for _, it := range env.Items {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}

// FindLocation returns the first location with the given ID.
func (env *Environment) FindLocation(id uuid.UUID) (*Location, bool) {
	for _, loc := range env.Locations {
		if loc.ID() == id {
			return loc, true
		}
	}
	return nil, false
}

// FindEntity returns the first entity with the given ID.
func (env *Environment) FindEntity(id uuid.UUID) (*Entity, bool) {
	for _, e := range env.Entities {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// Quests returns every quest held by the environment's entities, once each,
// in the order they are first seen.
func (env *Environment) Quests() []*quest.Quest {
	seen := make(map[*quest.Quest]bool)
	quests := make([]*quest.Quest, 0)
	for _, e := range env.Entities {
		for _, q := range e.Quests {
			if q == nil || seen[q] {
				continue
			}
			seen[q] = true
			quests = append(quests, q)
		}
	}
	return quests
}
