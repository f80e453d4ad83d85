package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/skirmish.yaml
var defaultYAML []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "mem://skirmish/config.schema.json"

var (
	compiledSchema *jsonschema.Schema
	schemaErr      error
	schemaOnce     sync.Once
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("config: failed to add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("config: failed to compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Load loads the game configuration.
// Search order: customPath -> ~/.skirmish/config.yaml -> ./configs/skirmish.yaml -> embedded default
func Load(customPath string) (*Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	candidates := []string{}
	if p := userConfigPath("config.yaml"); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", "skirmish.yaml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		return cfg, path, err
	}

	cfg, err := loadEmbedded(defaultYAML)
	return cfg, "", err
}

// loadEmbedded parses the built-in defaults. They ship with the binary, so a
// parse failure is a build defect and is reported.
func loadEmbedded(data []byte) (*Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: embedded defaults are broken: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses one YAML file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays a YAML document on DefaultConfig and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig() // Start with defaults

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against the embedded schema
func (c *Config) Validate() error {
	s, err := schema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to encode for validation: %w", err)
	}
	var doc interface{}
	docDec := json.NewDecoder(bytes.NewReader(raw))
	docDec.UseNumber()
	if err := docDec.Decode(&doc); err != nil {
		return fmt.Errorf("config: failed to decode for validation: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skirmish", filename)
}
