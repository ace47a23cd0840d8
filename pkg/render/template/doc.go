// Package template defines the renderer-agnostic template seam FormGroup
// controls render through. The gotemplate subpackage provides the default
// pongo2-backed engine.
package template
