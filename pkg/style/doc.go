// Package style defines the value types of the style configuration model:
// element categories, the alignment and line-spacing domains, template names,
// and the Configuration aggregate handed to rendering backends.
package style
