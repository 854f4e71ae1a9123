package worldfile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var validKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

// IsValidKey reports whether key is lowercase snake_case.
func IsValidKey(key string) bool {
	return validKeyRegex.MatchString(key)
}

type validator struct {
	errors []string
}

func (v *validator) addError(format string, args ...any) {
	v.errors = append(v.errors, "  - "+fmt.Sprintf(format, args...))
}

func (v *validator) validateKey(kind, key string) {
	if !IsValidKey(key) {
		v.addError("%s key '%s' should be lowercase snake_case", kind, key)
	}
}

// Validate checks keys, names and cross references. All problems are reported
// together in one error wrapping ErrInvalidWorld.
func Validate(s *Spec) error {
	if s == nil {
		return fmt.Errorf("world is nil: %w", ErrInvalidWorld)
	}

	v := &validator{}
	if strings.TrimSpace(s.Name) == "" {
		v.addError("world has no name")
	}

	for _, key := range sortedKeys(s.Items) {
		v.validateKey("item", key)
		if strings.TrimSpace(s.Items[key].Name) == "" {
			v.addError("item '%s' has no name", key)
		}
	}

	for _, key := range sortedKeys(s.Locations) {
		loc := s.Locations[key]
		v.validateKey("location", key)
		if strings.TrimSpace(loc.Name) == "" {
			v.addError("location '%s' has no name", key)
		}
		if loc.Parent != "" {
			if _, ok := s.Locations[loc.Parent]; !ok {
				v.addError("location '%s' has unknown parent '%s'", key, loc.Parent)
			}
		}
	}
	v.validateLocationCycles(s.Locations)

	for _, key := range sortedKeys(s.Quests) {
		q := s.Quests[key]
		v.validateKey("quest", key)
		if strings.TrimSpace(q.Name) == "" {
			v.addError("quest '%s' has no name", key)
		}
		for i, r := range q.Requirements {
			if strings.TrimSpace(r) == "" {
				v.addError("quest '%s' requirement %d has no description", key, i)
			}
		}
		for i, f := range q.FailureMethods {
			if strings.TrimSpace(f) == "" {
				v.addError("quest '%s' failure method %d has no description", key, i)
			}
		}
	}

	for _, key := range sortedKeys(s.Entities) {
		e := s.Entities[key]
		v.validateKey("entity", key)
		if strings.TrimSpace(e.Name) == "" {
			v.addError("entity '%s' has no name", key)
		}
		for _, qk := range e.Quests {
			if _, ok := s.Quests[qk]; !ok {
				v.addError("entity '%s' references unknown quest '%s'", key, qk)
			}
		}
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("%w:\n%s", ErrInvalidWorld, strings.Join(v.errors, "\n"))
	}
	return nil
}

// validateLocationCycles reports each location whose parent chain loops.
func (v *validator) validateLocationCycles(locs map[string]LocationSpec) {
	for _, key := range sortedKeys(locs) {
		seen := map[string]bool{key: true}
		for cur := locs[key].Parent; cur != ""; cur = locs[cur].Parent {
			if seen[cur] {
				v.addError("location '%s' has a parent cycle through '%s'", key, cur)
				break
			}
			seen[cur] = true
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
