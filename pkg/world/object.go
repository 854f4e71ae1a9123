package world

import (
	"slices"

	"github.com/google/uuid"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

// GameObject is the identity shared by everything that lives in an environment.
type GameObject struct {
	id          uuid.UUID
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewGameObject creates a game object with a fresh ID.
func NewGameObject(name, description string) GameObject {
	return NewGameObjectWithID(uuid.New(), name, description)
}

// NewGameObjectWithID creates a game object with a caller supplied ID.
func NewGameObjectWithID(id uuid.UUID, name, description string) GameObject {
	return GameObject{
		id:          id,
		Name:        name,
		Description: description,
	}
}

// ID returns the object's identity. It never changes after construction.
func (o GameObject) ID() uuid.UUID {
	return o.id
}

// Item is a thing that can be found, carried or used.
type Item struct {
	GameObject
	Unique bool `json:"unique,omitempty"`
}

func NewItem(name, description string) *Item {
	return &Item{GameObject: NewGameObject(name, description)}
}

// CloneNewInstance returns an independent copy of the item with its own ID.
func (i *Item) CloneNewInstance() *Item {
	clone := NewItem(i.Name, i.Description)
	clone.Unique = i.Unique
	return clone
}

// Entity is a character or creature. Its quests are held by pointer and may be
// shared with other entities.
type Entity struct {
	GameObject
	Quests []*quest.Quest `json:"-"`
}

func NewEntity(name, description string) *Entity {
	return &Entity{
		GameObject: NewGameObject(name, description),
		Quests:     make([]*quest.Quest, 0),
	}
}

// AddQuest appends q to the entity's quests.
func (e *Entity) AddQuest(q *quest.Quest) {
	e.Quests = append(e.Quests, q)
}

// CloneNewInstance returns a new entity with its own ID and its own quest list.
// The list holds the same quests as e.
func (e *Entity) CloneNewInstance() *Entity {
	clone := NewEntity(e.Name, e.Description)
	clone.Quests = append(clone.Quests, e.Quests...)
	return clone
}

// Location is a place. Parent is nil for top level locations.
type Location struct {
	GameObject
	Parent *Location `json:"-"`
}

func NewLocation(name, description string, parent *Location) *Location {
	return &Location{
		GameObject: NewGameObject(name, description),
		Parent:     parent,
	}
}

// Path returns the chain of locations from the outermost ancestor down to l.
// Parents are not checked for cycles when set, so the walk stops at the first
// location it has already visited.
func (l *Location) Path() []*Location {
	var path []*Location
	seen := make(map[*Location]bool)
	for cur := l; cur != nil && !seen[cur]; cur = cur.Parent {
		seen[cur] = true
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
