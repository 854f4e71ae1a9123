package worldfile

// Spec is the on-disk definition of a world. Map keys are lowercase snake_case
// identifiers that other entries use to refer to each other.
type Spec struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Items       map[string]ItemSpec     `json:"items,omitempty" yaml:"items,omitempty"`
	Locations   map[string]LocationSpec `json:"locations,omitempty" yaml:"locations,omitempty"`
	Quests      map[string]QuestSpec    `json:"quests,omitempty" yaml:"quests,omitempty"`
	Entities    map[string]EntitySpec   `json:"entities,omitempty" yaml:"entities,omitempty"`
}

type ItemSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Unique      bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
}

type LocationSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Parent      string `json:"parent,omitempty" yaml:"parent,omitempty"` // Location key
}

// QuestSpec lists requirements and failure methods by description.
type QuestSpec struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Requirements   []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	FailureMethods []string `json:"failure_methods,omitempty" yaml:"failure_methods,omitempty"`
}

type EntitySpec struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Quests      []string `json:"quests,omitempty" yaml:"quests,omitempty"` // Quest keys
}
