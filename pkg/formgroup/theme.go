package formgroup

import (
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgroup/pkg/components"
	"github.com/goliatone/go-formgroup/pkg/model"
)

func themePartials(cfg *theme.RendererConfig) map[string]string {
	partials := components.DefaultPartials()
	if cfg == nil {
		return partials
	}
	for key, value := range cfg.Partials {
		if value = strings.TrimSpace(value); value != "" {
			partials[key] = value
		}
	}
	return partials
}

// themeCSSVars returns the configured CSS variables, deriving --token
// variables from the tokens when none are set.
func themeCSSVars(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil {
		return nil
	}
	if len(cfg.CSSVars) > 0 {
		return maps.Clone(cfg.CSSVars)
	}
	if len(cfg.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars["--"+strings.TrimPrefix(key, "--")] = value
	}
	return vars
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(vars))
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(vars[key])
		if value == "" {
			continue
		}
		parts = append(parts, key+": "+value+";")
	}
	return strings.Join(parts, " ")
}

func groupContext(props model.Props, id string, cfg *theme.RendererConfig) map[string]any {
	checkable := props.Type.IsCheckable()
	class := ClassGroup
	if checkable {
		class += " " + ClassCheckGroup
	}

	group := map[string]any{
		"id":               id,
		"type":             string(props.Type.OrDefault()),
		"class":            class,
		"label":            strings.TrimSpace(props.Label),
		"label_after":      checkable,
		"invalid_feedback": strings.TrimSpace(props.InvalidFeedback),
		"valid_feedback":   strings.TrimSpace(props.ValidFeedback),
		"style":            cssVarsStyle(themeCSSVars(cfg)),
	}
	if cfg != nil {
		group["theme"] = cfg.Theme
		group["variant"] = cfg.Variant
	}
	return group
}
