// Package paths provides centralized path handling for docgen.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths
