package world

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/quest-engine/pkg/quest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObject(t *testing.T) {
	a := NewGameObject("Lamp", "An oil lamp")
	b := NewGameObject("Lamp", "An oil lamp")

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	id := uuid.New()
	c := NewGameObjectWithID(id, "Rope", "")
	assert.Equal(t, id, c.ID())
	assert.Equal(t, "Rope", c.Name)
}

func TestItem_CloneNewInstance(t *testing.T) {
	tests := []struct {
		name   string
		unique bool
	}{
		{name: "common item", unique: false},
		{name: "unique item", unique: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sword := NewItem("Sword", "A blade")
			sword.Unique = tt.unique

			clone := sword.CloneNewInstance()

			assert.NotSame(t, sword, clone)
			assert.NotEqual(t, sword.ID(), clone.ID())
			assert.Equal(t, "Sword", clone.Name)
			assert.Equal(t, "A blade", clone.Description)
			assert.Equal(t, tt.unique, clone.Unique)

			clone.Name = "Broken sword"
			assert.Equal(t, "Sword", sword.Name)
		})
	}
}

func TestItem_DefaultNotUnique(t *testing.T) {
	assert.False(t, NewItem("Sword", "A blade").CloneNewInstance().Unique)
}

func TestEntity_AddQuest(t *testing.T) {
	q, err := quest.NewQuest("Find key", "", []*quest.Requirement{quest.NewRequirement("find key")}, nil)
	require.NoError(t, err)

	innkeeper := NewEntity("Innkeeper", "Keeps the inn")
	innkeeper.AddQuest(q)

	require.Len(t, innkeeper.Quests, 1)
	assert.Same(t, q, innkeeper.Quests[0])
}

func TestEntity_QuestsNotSharedBetweenInstances(t *testing.T) {
	q, err := quest.NewQuest("Only mine", "", nil, nil)
	require.NoError(t, err)

	a := NewEntity("A", "")
	b := NewEntity("B", "")
	a.AddQuest(q)

	assert.Len(t, a.Quests, 1)
	assert.Empty(t, b.Quests)
}

func TestEntity_CloneNewInstance(t *testing.T) {
	q1, err := quest.NewQuest("First", "", nil, nil)
	require.NoError(t, err)
	q2, err := quest.NewQuest("Second", "", nil, nil)
	require.NoError(t, err)

	guard := NewEntity("Guard", "Watches the gate")
	guard.AddQuest(q1)

	clone := guard.CloneNewInstance()

	assert.NotEqual(t, guard.ID(), clone.ID())
	assert.Equal(t, guard.Name, clone.Name)
	assert.Equal(t, guard.Description, clone.Description)
	require.Len(t, clone.Quests, 1)
	assert.Same(t, q1, clone.Quests[0])

	clone.AddQuest(q2)
	assert.Len(t, guard.Quests, 1)
	assert.Len(t, clone.Quests, 2)
}

func TestLocation_Path(t *testing.T) {
	castle := NewLocation("Castle", "", nil)
	hall := NewLocation("Great hall", "", castle)
	pantry := NewLocation("Pantry", "", hall)

	assert.Equal(t, []*Location{castle}, castle.Path())
	assert.Equal(t, []*Location{castle, hall, pantry}, pantry.Path())
	assert.Nil(t, castle.Parent)
}

func TestLocation_PathStopsOnCycle(t *testing.T) {
	a := NewLocation("A", "", nil)
	b := NewLocation("B", "", a)
	a.Parent = b

	path := a.Path()
	assert.Equal(t, []*Location{b, a}, path)
}

func TestEnvironment_AddItemsInOrder(t *testing.T) {
	env := NewEnvironment()
	sword := NewItem("Sword", "A blade")
	shield := NewItem("Shield", "A guard")

	env.AddItem(sword)
	env.AddItem(shield)

	require.Len(t, env.Items, 2)
	assert.Same(t, sword, env.Items[0])
	assert.Same(t, shield, env.Items[1])
	assert.Empty(t, env.Locations)
	assert.Empty(t, env.Entities)
}

func TestEnvironment_AllowsDuplicates(t *testing.T) {
	env := NewEnvironment()
	cave := NewLocation("Cave", "", nil)

	env.AddLocation(cave)
	env.AddLocation(cave)

	assert.Len(t, env.Locations, 2)
}

func TestEnvironment_Find(t *testing.T) {
	env := NewEnvironment()
	coin := NewItem("Coin", "")
	cave := NewLocation("Cave", "", nil)
	bat := NewEntity("Bat", "")
	env.AddItem(coin)
	env.AddLocation(cave)
	env.AddEntity(bat)

	it, ok := env.FindItem(coin.ID())
	assert.True(t, ok)
	assert.Same(t, coin, it)

	loc, ok := env.FindLocation(cave.ID())
	assert.True(t, ok)
	assert.Same(t, cave, loc)

	e, ok := env.FindEntity(bat.ID())
	assert.True(t, ok)
	assert.Same(t, bat, e)

	_, ok = env.FindItem(uuid.New())
	assert.False(t, ok)
}

func TestEnvironment_Quests(t *testing.T) {
	shared, err := quest.NewQuest("Shared", "", nil, nil)
	require.NoError(t, err)
	own, err := quest.NewQuest("Own", "", nil, nil)
	require.NoError(t, err)

	env := NewEnvironment()
	elder := NewEntity("Elder", "")
	elder.AddQuest(shared)
	twin := elder.CloneNewInstance()
	twin.AddQuest(own)
	env.AddEntity(elder)
	env.AddEntity(twin)

	assert.Equal(t, []*quest.Quest{shared, own}, env.Quests())
}

func TestEnvironments_Independent(t *testing.T) {
	a := NewEnvironment()
	b := NewEnvironment()
	a.AddEntity(NewEntity("Only in A", ""))

	assert.Len(t, a.Entities, 1)
	assert.Empty(t, b.Entities)
}
