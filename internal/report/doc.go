// Package report orchestrates one report run: load, normalize, aggregate,
// render, and assemble the narrative document.
package report
