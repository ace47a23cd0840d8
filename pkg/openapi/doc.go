// Package openapi derives FormGroup props from the request body of an OpenAPI 3
// operation so every schema property can be rendered as one form group.
package openapi
