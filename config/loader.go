package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads settings from a file, auto-detecting format by extension,
// and validates them.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Settings, error) {
	s, err := ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

// ReadFile decodes a settings file over Default without validating, for
// callers that overlay further values (command-line flags) and validate
// once at the end.
func ReadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".json":
		return decodeJSON(data)
	default:
		return Settings{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML over Default and validates the result. On a
// validation error the decoded settings are returned with it.
func FromYAML(data []byte) (Settings, error) {
	s, err := decodeYAML(data)
	if err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

// FromJSON parses JSON over Default and validates the result.
func FromJSON(data []byte) (Settings, error) {
	s, err := decodeJSON(data)
	if err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

func decodeYAML(data []byte) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("parse yaml: %w", err)
	}
	return s, nil
}

func decodeJSON(data []byte) (Settings, error) {
	s := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse json: %w", err)
	}
	return s, nil
}

// WriteFile stores s at path in the format its extension names.
func (s Settings) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	case ".json":
		data, err = json.MarshalIndent(s, "", "    ")
	default:
		return fmt.Errorf("unsupported config file extension: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
