// Package server exposes the style configuration session and the rendering
// pipeline over HTTP. It is the non-desktop deployment surface: the same
// store-backed operations the CLI runs locally, reachable as a small JSON API
// under /api/v1.
//
// The API is session-per-process: one store, one active configuration. Edit
// endpoints answer with the state after the edit; validation and render
// failures surface only at the render endpoint, never speculatively.
package server
