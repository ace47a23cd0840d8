// Package model defines the props surface of the FormGroup component. The
// control kind is a closed InputType enum, the bound model is a typed Value
// (string, number, boolean or null) and every passthrough mapping carries
// typed values: Attrs hold strings, booleans or numbers, Dataset entries are
// serialised to JSON when they are not strings, Styles merge into the inline
// style attribute and Events map DOM event names onto Go handlers. Props also
// derive the validation state the renderer turns into is-valid/is-invalid
// classes and feedback nodes.
package model
