// Package validation checks a model against the HTML constraint attributes
// declared on its props (required, minlength, maxlength, min, max, pattern),
// so server-side validation agrees with what the browser enforces.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// Issue is one failed constraint.
type Issue struct {
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Result captures the outcome for a set of props.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Errors groups issue messages by field, ready for render.RenderOptions.
func (r Result) Errors() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, issue := range r.Issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// Validate checks every props entry.
func Validate(props []model.Props) Result {
	result := Result{Valid: true}
	for _, p := range props {
		result.Issues = append(result.Issues, Check(p)...)
	}
	result.Valid = len(result.Issues) == 0
	return result
}

// Check evaluates the constraints of a single props entry. An empty optional
// model passes every constraint. The props' InvalidFeedback, when set, is
// used as the required message.
func Check(props model.Props) []Issue {
	label := strings.TrimSpace(props.Label)
	if label == "" {
		label = props.Name
	}
	issue := func(constraint, message string) Issue {
		return Issue{Field: props.Name, Constraint: constraint, Message: message}
	}

	if props.Missing() {
		if !props.Attrs.Truthy("required") {
			return nil
		}
		message := strings.TrimSpace(props.InvalidFeedback)
		if message == "" {
			message = label + " is required"
		}
		return []Issue{issue("required", message)}
	}

	var issues []Issue
	text := props.Model.String()

	if n, ok := intAttr(props.Attrs, "minlength"); ok && utf8.RuneCountInString(text) < n {
		issues = append(issues, issue("minlength", fmt.Sprintf("%s must be at least %d characters", label, n)))
	}
	if n, ok := intAttr(props.Attrs, "maxlength"); ok && utf8.RuneCountInString(text) > n {
		issues = append(issues, issue("maxlength", fmt.Sprintf("%s must be at most %d characters", label, n)))
	}

	if props.Type.OrDefault() == model.TypeNumber {
		number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return append(issues, issue("number", label+" must be a number"))
		}
		if limit, ok := floatAttr(props.Attrs, "min"); ok && number < limit {
			issues = append(issues, issue("min", fmt.Sprintf("%s must be at least %s", label, model.Number(limit))))
		}
		if limit, ok := floatAttr(props.Attrs, "max"); ok && number > limit {
			issues = append(issues, issue("max", fmt.Sprintf("%s must be at most %s", label, model.Number(limit))))
		}
	}

	if pattern, ok := props.Attrs.Get("pattern"); ok && pattern.Text() != "" {
		re, err := regexp.Compile("^(?:" + pattern.Text() + ")$")
		switch {
		case err != nil:
			issues = append(issues, issue("pattern", fmt.Sprintf("%s has an invalid pattern", label)))
		case !re.MatchString(text):
			issues = append(issues, issue("pattern", label+" does not match the expected format"))
		}
	}

	if props.Type.OrDefault() == model.TypeSelect && len(props.Options) > 0 {
		allowed := slices.ContainsFunc(props.Options, func(option model.SelectOption) bool {
			return option.Value == text && !option.Disabled
		})
		if !allowed {
			issues = append(issues, issue("option", fmt.Sprintf("%s is not a valid choice", label)))
		}
	}
	return issues
}

func floatAttr(attrs model.Attrs, name string) (float64, bool) {
	value, ok := attrs.Get(name)
	if !ok || value.Omitted() {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value.Text()), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func intAttr(attrs model.Attrs, name string) (int, bool) {
	n, ok := floatAttr(attrs, name)
	if !ok || n < 0 || math.IsNaN(n) {
		return 0, false
	}
	if n >= math.MaxInt {
		return math.MaxInt, true
	}
	return int(n), true
}
