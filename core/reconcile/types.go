package reconcile

import (
	"fmt"
	"strings"

	"csv-adapter/core/schema"
)

// Plan is the ordered transformation plan for a single file: which
// columns to drop, which to rename, and the final column order.
// It is derived from one input header and is not reused across files.
type Plan struct {
	// Drop lists the input column names to remove, in the order they
	// appear in the input header. Names are the original (pre-rename)
	// ones, since that is what the table still carries when the drop
	// is applied.
	Drop []string

	// Renames lists the alias -> canonical pairs that apply to this
	// header, in rename-map declaration order.
	Renames []schema.Rename

	// Order is the final column order, equal to the reference header.
	Order []string

	// Identity is true when the input header already equals the
	// reference header and no drops or renames are needed. The adapter
	// then only has to deal with the delimiter.
	Identity bool
}

// SchemaMismatchError reports reference columns the input file lacks.
// Such a file cannot be adapted to the reference schema and is skipped.
type SchemaMismatchError struct {
	// Missing contains the missing canonical column names, sorted.
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: missing columns [%s]", strings.Join(e.Missing, ", "))
}

// DuplicateColumnError reports a column name that occurs more than once
// in the input header, either verbatim or after applying the rename map.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q", e.Name)
}
