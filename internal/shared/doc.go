// Package shared holds cross-cutting helpers that belong to no specific
// pipeline stage. Currently this is only testutil, the log-capture
// helpers used by package tests.
package shared
