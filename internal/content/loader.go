// Package content loads the portfolio data files and keeps the current
// snapshot of them available to the services.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"

	"dixanta.dev/internal/models"
	"dixanta.dev/internal/slug"
)

// Data file base names inside the data directory
const (
	ProjectsFile = "projects"
	AboutFile    = "about"
	SkillsFile   = "skills"
)

// Extensions tried for each data file, in order
var Extensions = []string{".json", ".yaml", ".yml"}

// Snapshot is one immutable load of the data directory
type Snapshot struct {
	Projects models.ProjectList
	About    models.About
	Skills   models.Skills
	LoadedAt time.Time

	// Slugs indexes Projects by derived slug
	Slugs slug.Index
}

// Load reads every data file from dir. The projects file is required;
// about and skills default to empty when absent.
func Load(dir string) (*Snapshot, error) {
	snap := &Snapshot{LoadedAt: time.Now()}

	found, err := decodeFile(dir, ProjectsFile, &snap.Projects)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no %s data file in %s", ProjectsFile, dir)
	}

	if _, err := decodeFile(dir, AboutFile, &snap.About); err != nil {
		return nil, err
	}
	if _, err := decodeFile(dir, SkillsFile, &snap.Skills); err != nil {
		return nil, err
	}

	snap.Slugs = slug.NewIndex(snap.Projects.Titles())
	return snap, nil
}

// IsDataFile reports whether path names one of the files Load reads
func IsDataFile(path string) bool {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	name := base[:len(base)-len(ext)]
	switch name {
	case ProjectsFile, AboutFile, SkillsFile:
	default:
		return false
	}
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// decodeFile finds name.{json,yaml,yml} in dir and decodes it into v
func decodeFile(dir, name string, v any) (bool, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if ext != ".json" {
			data, err = yamlToJSON(data)
			if err != nil {
				return false, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
		if err := json.Unmarshal(data, v); err != nil {
			if ext != ".json" {
				err = scalarHint(err)
			}
			return false, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return true, nil
	}
	return false, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats go through
// the same model decoders. Mapping keys keep their document order.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, &doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case 0:
		buf.WriteString("null")
		return nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])

	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			k, _ := json.Marshal(key.Value)
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		buf.Write(out)
		return nil

	default:
		return fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

// scalarHint explains a YAML number or bool landing in a string field
func scalarHint(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Type == nil || typeErr.Type.Kind() != reflect.String {
		return err
	}
	return fmt.Errorf("field %q is a YAML %s, quote it to keep it as text: %w", typeErr.Field, typeErr.Value, err)
}
