// Package render applies per-request state to FormGroup props before they are
// rendered: submitted values, server-side validation errors and translations.
package render

import (
	"net/url"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// RenderOptions describe per-request data that adjusts props without
// mutating the caller's definitions.
type RenderOptions struct {
	// Values pre-populates models keyed by props name. Submitted form values
	// (url.Values) can be converted with Bind first.
	Values map[string]any
	// Submission binds raw form values onto models by props name. Values wins
	// when both carry a name.
	Submission url.Values
	// Errors surfaces server-side validation feedback keyed by field path.
	// Matching props are marked invalid with the joined messages as feedback.
	Errors map[string][]string
	// FormErrors are form-level messages merged ahead of unmatched Errors.
	FormErrors []string
	// Locale and Translator localise labels, feedback and placeholders.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Result is the outcome of Apply.
type Result struct {
	Props []model.Props
	// Form holds errors that matched no props.
	Form []string
}

// Apply returns copies of props with opts applied, in the same order.
func Apply(props []model.Props, opts RenderOptions) Result {
	out := make([]model.Props, len(props))
	names := make([]string, 0, len(props))
	for i, p := range props {
		out[i] = p.Clone()
		names = append(names, p.Name)
	}

	for i := range out {
		if len(opts.Submission) > 0 {
			if value, ok := Bind(out[i], opts.Submission); ok {
				out[i].Model = value
			}
		}
		if raw, ok := opts.Values[out[i].Name]; ok {
			out[i].Model = model.ValueOf(raw)
		}
	}

	mapping := MapErrorPayload(names, opts.Errors)
	for i := range out {
		ApplyErrors(&out[i], mapping.Fields[out[i].Name])
	}

	if opts.Translator != nil || opts.OnMissing != nil {
		for i := range out {
			LocalizeProps(&out[i], opts.Locale, opts.Translator, opts.OnMissing)
		}
	}

	return Result{Props: out, Form: MergeFormErrors(opts.FormErrors, mapping.Form...)}
}
