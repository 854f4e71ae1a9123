package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	var out bytes.Buffer

	err := validateFile(&out, filepath.Join("..", "..", "pkg", "worldfile", "testdata", "lost_key.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "The Lost Key")
	assert.Contains(t, out.String(), "2 items, 2 locations, 2 entities, 2 quests")
	assert.Contains(t, out.String(), "[ ] find the brass key")
	assert.Contains(t, out.String(), "[x] fails if: the key is thrown down the well")
	assert.Contains(t, out.String(), "World file is valid!")
}

func TestValidateFile_BadFilename(t *testing.T) {
	var out bytes.Buffer

	err := validateFile(&out, filepath.Join("testdata", "Lost-Key.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowercase snake_case")
}

func TestIsValidWorldFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"lost_key", true},
		{"x.lost_key", true},
		{"lost-key", false},
		{"LostKey", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidWorldFilename(tt.name))
		})
	}
}
