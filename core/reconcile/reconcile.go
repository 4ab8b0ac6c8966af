package reconcile

import (
	"slices"
	"sort"

	"csv-adapter/core/schema"
)

// Reconcile maps an input header onto the reference schema and returns
// the transformation plan for the file: columns to drop, renames to
// apply, and the final column order.
//
// Rename-map entries that match no input column are ignored; reference
// headers are shared across many file shapes and most entries will not
// apply to any given file. Matching is exact and case-sensitive.
func Reconcile(header []string, s *schema.Schema) (*Plan, error) {
	refSet := make(map[string]struct{}, len(s.ReferenceHeader))
	for _, name := range s.ReferenceHeader {
		refSet[name] = struct{}{}
	}

	// Apply the rename map to every input name. Duplicates are checked
	// on the mapped names so that two aliases resolving to the same
	// canonical column are rejected too.
	mapped := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		canonical := s.RenameMap.Resolve(name)
		if _, dup := seen[canonical]; dup {
			return nil, &DuplicateColumnError{Name: canonical}
		}
		seen[canonical] = struct{}{}
		mapped[i] = canonical
	}

	var plan Plan

	// Columns the reference schema does not want are dropped under
	// their original name, in input order.
	for i, canonical := range mapped {
		if _, wanted := refSet[canonical]; !wanted {
			plan.Drop = append(plan.Drop, header[i])
		}
	}

	// Columns the reference schema demands but the input lacks make
	// the file unrecoverable for this schema.
	var missing []string
	for _, name := range s.ReferenceHeader {
		if _, ok := seen[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaMismatchError{Missing: missing}
	}

	// Renames in rename-map declaration order, restricted to aliases
	// present in this header whose target is kept.
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	for _, pair := range s.RenameMap.Pairs() {
		if pair.From == pair.To {
			continue
		}
		if _, ok := present[pair.From]; !ok {
			continue
		}
		if _, wanted := refSet[pair.To]; !wanted {
			continue
		}
		plan.Renames = append(plan.Renames, pair)
	}

	plan.Order = slices.Clone(s.ReferenceHeader)
	plan.Identity = len(plan.Drop) == 0 && len(plan.Renames) == 0 &&
		slices.Equal(header, s.ReferenceHeader)

	return &plan, nil
}
