// Package loader reads named FormGroup definitions from JSON and YAML files.
//
// Every file carries a top-level "groups" mapping:
//
//	groups:
//	  email:
//	    type: text
//	    label: Email
//	    attrs:
//	      required: true
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// ErrNotFound is returned when a definition name is not in the store.
var ErrNotFound = errors.New("loader: definition not found")

type document struct {
	Groups map[string]Definition `json:"groups" yaml:"groups"`
}

// Store holds the definitions loaded from one or more files.
type Store struct {
	groups  map[string]Definition
	sources map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		groups:  make(map[string]Definition),
		sources: make(map[string]string),
	}
}

// LoadDir loads every definition file below dir.
func LoadDir(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("loader: directory is required")
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}
		return store.Add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Add parses one file's contents into the store. The path extension selects
// the decoder.
func (s *Store) Add(data []byte, path string) error {
	doc, err := parseDocument(data, path)
	if err != nil {
		return err
	}
	for rawName, def := range doc.Groups {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("loader: file %s defines an empty group name", path)
		}
		if existing, ok := s.sources[name]; ok {
			return fmt.Errorf("loader: duplicate group %q (files %s and %s)", name, existing, path)
		}
		if _, err := model.ParseInputType(def.Type); err != nil {
			return fmt.Errorf("loader: group %q in %s: %w", name, path, err)
		}
		if def.Name == "" {
			def.Name = name
		}
		s.groups[name] = def
		s.sources[name] = path
	}
	return nil
}

// Names returns the definition names sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Definition returns the raw definition for name.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.groups[strings.TrimSpace(name)]
	return def, ok
}

// Props converts the named definition into component props.
func (s *Store) Props(name string) (model.Props, error) {
	def, ok := s.Definition(name)
	if !ok {
		return model.Props{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return def.Props()
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("loader: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("loader: parse %s: %w", path, err)
		}
	default:
		return document{}, fmt.Errorf("loader: unsupported file %s", path)
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
