package adapt

import (
	"fmt"
	"slices"

	"csv-adapter/core/reconcile"
	"csv-adapter/core/table"
)

// ActionLog is the ordered, human-readable record of what the adapter
// changed in one file. It is emitted for reporting and never consumed
// downstream.
type ActionLog []string

// Apply executes a transformation plan against one parsed table and
// returns the adapted table plus the log of actions taken. The input
// table is left untouched.
//
// inSep is the separator the file was read with, outSep the one the
// output is serialized with; they only matter for the log and for the
// "already correct" short-circuit.
func Apply(tbl *table.Table, plan *reconcile.Plan, inSep, outSep rune) (*table.Table, ActionLog) {
	var log ActionLog

	dropSet := make(map[string]struct{}, len(plan.Drop))
	for _, name := range plan.Drop {
		if slices.Contains(tbl.Header, name) {
			dropSet[name] = struct{}{}
			log = append(log, fmt.Sprintf("column %q dropped", name))
		}
	}

	renames := make(map[string]string, len(plan.Renames))
	for _, pair := range plan.Renames {
		renames[pair.From] = pair.To
		log = append(log, fmt.Sprintf("column %q renamed to %q", pair.From, pair.To))
	}

	// Survivors in input order, renames applied. If that already equals
	// the final order, no rearranging happened.
	kept := make([]string, 0, len(tbl.Header))
	for _, name := range tbl.Header {
		if _, dropped := dropSet[name]; dropped {
			continue
		}
		if to, ok := renames[name]; ok {
			kept = append(kept, to)
			continue
		}
		kept = append(kept, name)
	}
	if !slices.Equal(kept, plan.Order) {
		log = append(log, "columns rearranged")
	}

	if inSep != outSep {
		log = append(log, fmt.Sprintf("separator %q changed to %q", string(inSep), string(outSep)))
	}

	if len(log) == 0 {
		log = append(log, "file already has the correct format")
	}

	out := &table.Table{
		Header: slices.Clone(plan.Order),
		Rows:   make([]table.Row, 0, len(tbl.Rows)),
	}
	for _, row := range tbl.Rows {
		outRow := make(table.Row, len(out.Header))
		for _, name := range tbl.Header {
			if _, dropped := dropSet[name]; dropped {
				continue
			}
			if to, ok := renames[name]; ok {
				outRow[to] = row[name]
				continue
			}
			outRow[name] = row[name]
		}
		out.Rows = append(out.Rows, outRow)
	}

	return out, log
}
