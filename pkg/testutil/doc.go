// Package testutil provides helpers shared by pathte tests.
//
// Isolate points every location pathte reads or writes (config, state, log
// file) at a fresh temporary directory and clears PATHTE_* variables, so a
// developer's own configuration never changes a test's outcome.
package testutil
