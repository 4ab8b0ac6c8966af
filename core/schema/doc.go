// Package schema defines the canonical table shape that adapted CSV
// files must conform to: the reference header, the rename map, and the
// output delimiter.
//
// The schema is loaded once per run from a YAML file and shared
// read-only by the reconciler and the file adapter. Keeping it an
// explicit value (rather than package-level constants) allows multiple
// schemas to coexist, e.g. one per tenant, and keeps tests simple.
//
// # Schema file
//
//	reference_header: [mac, dhcp60, dhcp55, hostname]
//	rename_map:
//	  "Host name": hostname
//	  "MAC": mac
//	delimiter: ";"
//
// The rename map preserves the declaration order of the file. Action
// logs report renames in that order, so the order is part of the
// observable behavior and is covered by tests.
package schema
