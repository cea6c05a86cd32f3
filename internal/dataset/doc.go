// Package dataset defines the typed source tables and their CSV loaders.
//
// The upstream datasets are schema-less CSV exports; this package pins
// their column names at load time so a renamed or missing column fails the
// run immediately with a schema mismatch instead of surfacing later as a
// silently empty chart. Loaded tables are immutable snapshots: nothing
// downstream mutates them.
package dataset
