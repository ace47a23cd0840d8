package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. args carries {"default": fallback}.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// LocalizeProps treats the label, both feedback messages and the placeholder
// attribute as message keys and replaces them with their translation. Text
// with no translation is kept as-is.
func LocalizeProps(props *model.Props, locale string, t Translator, onMissing MissingTranslationHandler) {
	if props == nil {
		return
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	props.Label = translate(locale, props.Label, t, onMissing)
	props.InvalidFeedback = translate(locale, props.InvalidFeedback, t, onMissing)
	props.ValidFeedback = translate(locale, props.ValidFeedback, t, onMissing)

	if placeholder, ok := props.Attrs["placeholder"]; ok && placeholder.Kind() == model.KindString {
		props.Attrs["placeholder"] = model.AttrString(translate(locale, placeholder.Text(), t, onMissing))
	}
}

// TranslateFilter returns a template filter for {{ key|translate:locale }}.
// Register it through TemplateRenderer.RegisterFilter.
func TranslateFilter(t Translator, onMissing MissingTranslationHandler) func(input any, param any) (any, error) {
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return func(input any, param any) (any, error) {
		key := strings.TrimSpace(fmt.Sprint(input))
		if input == nil || key == "" {
			return "", nil
		}
		locale := ""
		if param != nil {
			locale = strings.TrimSpace(fmt.Sprint(param))
		}
		return translate(locale, key, t, onMissing), nil
	}
}

func translate(locale, key string, t Translator, onMissing MissingTranslationHandler) string {
	fallback := key
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	args := []any{map[string]any{"default": fallback}}

	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, args, err)
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if len(args) > 0 {
		if m, ok := args[0].(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && fallback != "" {
				return fallback
			}
		}
	}
	return key
}
