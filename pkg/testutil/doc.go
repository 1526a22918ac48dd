// Package testutil provides helpers for testing pihello components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories and provides an in-memory filesystem
//   - CreateFile, ReadFile: real files under a test's temp directory
//
// Usage guidelines:
//   - Templates, variable files and themes go in the in-memory filesystem
//   - Only the user config file needs a real file, since it is read by path
//   - Each test should be completely isolated with no shared state
package testutil
