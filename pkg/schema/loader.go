package schema

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML shape of one table definition:
//
//	table: User
//	properties:
//	  id: key
//	  name: string
//	  bio: long_string
//	  age: long
//
// Property order in the file is irrelevant; the registered set is what
// matters.
type fileSchema struct {
	Table      string            `yaml:"table"`
	Properties map[string]string `yaml:"properties"`
}

// Load parses one YAML table definition from a stream.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if fs.Table == "" {
		return nil, fmt.Errorf("schema file missing table name")
	}

	def := Define(fs.Table)
	for name, kindName := range fs.Properties {
		kind, err := ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("table %q property %q: %w", fs.Table, name, err)
		}
		def.Property(name, kind)
	}
	return def.Build()
}

// LoadFile parses one YAML table definition from a file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadGlob loads every schema file under dir matching pattern (doublestar
// syntax, e.g. "**/*.yaml") into a new Registry.
func LoadGlob(dir, pattern string) (*Registry, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid schema pattern %q: %w", pattern, err)
	}

	reg := NewRegistry()
	for _, rel := range matches {
		t, err := LoadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, err
		}
		reg.Add(t)
	}
	return reg, nil
}
