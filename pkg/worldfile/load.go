package worldfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidWorld wraps every decoding and validation failure.
var ErrInvalidWorld = errors.New("invalid world")

// Format is the encoding of a world file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported world file extension %q: %w", filepath.Ext(path), ErrInvalidWorld)
	}
}

// Load reads and strictly decodes a world file. It does not validate references.
func Load(path string) (*Spec, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("world not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	return Decode(data, format)
}

// Decode strictly decodes data; unknown fields are rejected.
func Decode(data []byte, format Format) (*Spec, error) {
	var s Spec

	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, fmt.Errorf("world contains invalid JSON: %w", ErrInvalidWorld)
		}
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed strict JSON unmarshaling: %v: %w", err, ErrInvalidWorld)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("world file is empty: %w", ErrInvalidWorld)
			}
			return nil, fmt.Errorf("failed strict YAML unmarshaling: %v: %w", err, ErrInvalidWorld)
		}
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, ErrInvalidWorld)
	}

	return &s, nil
}

// List walks dir for world files and maps each world's name to its path
// relative to dir. Unreadable files are logged and skipped.
func List(dir string, logger *slog.Logger) (map[string]string, error) {
	worlds := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ferr := FormatFor(path); ferr != nil {
			return nil
		}

		s, lerr := Load(path)
		if lerr != nil {
			logger.Warn("Failed to load world file", "path", path, "error", lerr)
			return nil
		}

		rel, rerr := filepath.Rel(dir, path)
		if rerr != nil {
			rel = path
		}
		worlds[s.Name] = rel
		return nil
	})
	if err != nil {
		logger.Error("Failed to walk worlds directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	return worlds, nil
}
