package components

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	optionPolicyOnce sync.Once
	optionPolicy     *bluemonday.Policy
)

// SanitizeOptions strips everything but option/optgroup markup from raw
// select content.
func SanitizeOptions(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(optionSanitizer().Sanitize(trimmed))
}

func optionSanitizer() *bluemonday.Policy {
	optionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("option", "optgroup")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		optionPolicy = policy
	})
	return optionPolicy
}
