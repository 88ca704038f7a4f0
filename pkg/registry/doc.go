// Package registry provides a generic, thread-safe registry of named
// items. It backs the lookup tables docgen builds through init()
// registration, such as rendering backends keyed by output extension.
package registry
