package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDelimiter is the output delimiter used when the schema file
// does not specify one.
const DefaultDelimiter = ';'

// Rename is a single alias -> canonical name mapping entry.
type Rename struct {
	From string
	To   string
}

// RenameMap maps observed column names to canonical ones while
// preserving the declaration order of the schema file. Action logs are
// expected to list renames in a stable order, so a plain Go map is not
// enough here.
type RenameMap struct {
	pairs []Rename
	index map[string]string
}

// NewRenameMap builds a rename map from explicit pairs, keeping their
// order. The first pair wins on duplicate aliases.
func NewRenameMap(pairs ...Rename) RenameMap {
	m := RenameMap{index: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		if _, exists := m.index[p.From]; exists {
			continue
		}
		m.pairs = append(m.pairs, p)
		m.index[p.From] = p.To
	}
	return m
}

// UnmarshalYAML decodes a YAML mapping node, keeping key order.
func (m *RenameMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("rename_map: expected a mapping, got %s", node.Tag)
	}

	m.pairs = nil
	m.index = make(map[string]string, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		var from, to string
		if err := key.Decode(&from); err != nil {
			return fmt.Errorf("rename_map key: %w", err)
		}
		if err := val.Decode(&to); err != nil {
			return fmt.Errorf("rename_map value for %q: %w", from, err)
		}

		if _, exists := m.index[from]; exists {
			return fmt.Errorf("rename_map: duplicate entry for %q", from)
		}

		m.pairs = append(m.pairs, Rename{From: from, To: to})
		m.index[from] = to
	}

	return nil
}

// Resolve returns the canonical name for an observed column name.
// Names without an entry pass through unchanged.
func (m *RenameMap) Resolve(name string) string {
	if to, ok := m.index[name]; ok {
		return to
	}
	return name
}

// Pairs returns the rename entries in declaration order.
func (m *RenameMap) Pairs() []Rename {
	return m.pairs
}

// Len returns the number of rename entries.
func (m *RenameMap) Len() int {
	return len(m.pairs)
}

// Schema is the canonical table shape expected by the downstream batch
// processor: the reference header, the alias lookup, and the output
// delimiter. It is loaded once per run and treated as read-only.
type Schema struct {
	// ReferenceHeader is the canonical, ordered list of column names.
	ReferenceHeader []string `yaml:"reference_header"`

	// RenameMap maps observed column names to canonical ones.
	RenameMap RenameMap `yaml:"rename_map"`

	// Delimiter is the output field separator, as a one-character string.
	// Defaults to ";" when empty.
	Delimiter string `yaml:"delimiter"`
}

// Load reads and validates a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file %s: %w", path, err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks the schema invariants and fills in defaults.
func (s *Schema) Validate() error {
	if len(s.ReferenceHeader) == 0 {
		return fmt.Errorf("reference_header must not be empty")
	}

	seen := make(map[string]struct{}, len(s.ReferenceHeader))
	for _, name := range s.ReferenceHeader {
		if name == "" {
			return fmt.Errorf("reference_header contains an empty column name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("reference_header contains %q more than once", name)
		}
		seen[name] = struct{}{}
	}

	if s.Delimiter == "" {
		s.Delimiter = string(DefaultDelimiter)
	}
	if len([]rune(s.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}

	return nil
}

// DelimiterRune returns the output delimiter as a rune.
func (s *Schema) DelimiterRune() rune {
	return []rune(s.Delimiter)[0]
}
