package render

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// Bind reads the submitted value for props from values and converts it to
// the model kind the control produces. The boolean result reports whether
// the submission carried anything for the control. Browsers omit unchecked
// checkboxes, so a missing checkbox binds to false.
func Bind(props model.Props, values url.Values) (model.Value, bool) {
	name := strings.TrimSpace(props.Name)
	if name == "" || values == nil {
		return model.Null(), false
	}
	raw, present := values[name]

	switch props.Type.OrDefault() {
	case model.TypeCheckbox:
		if !present {
			return model.Bool(false), true
		}
		if len(raw) == 0 {
			return model.Bool(true), true
		}
		switch strings.ToLower(strings.TrimSpace(raw[len(raw)-1])) {
		case "false", "off", "0", "no":
			return model.Bool(false), true
		}
		return model.Bool(true), true

	case model.TypeRadio:
		if !present || len(raw) == 0 {
			return model.Null(), false
		}
		return model.String(raw[len(raw)-1]), true

	case model.TypeNumber:
		if !present || len(raw) == 0 {
			return model.Null(), false
		}
		text := strings.TrimSpace(raw[len(raw)-1])
		if text == "" {
			return model.Null(), true
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.String(text), true
		}
		return model.Number(n), true
	}

	if !present || len(raw) == 0 {
		return model.Null(), false
	}
	return model.String(raw[len(raw)-1]), true
}
