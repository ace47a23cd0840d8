package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formgroup/pkg/model"
)

const dateLayout = "2006-01-02"

// Target is the component surface Fill needs. *formgroup.FormGroup
// satisfies it.
type Target interface {
	Props() model.Props
	Trigger(ctx context.Context, event model.Event) error
}

// Fill asks for a value suited to the target's type and dispatches it as a
// change event, so the target emits update and bound parents receive it.
func Fill(ctx context.Context, target Target, driver PromptDriver) (model.Value, error) {
	if target == nil {
		return model.Null(), errors.New("prompt: target is required")
	}
	if driver == nil {
		return model.Null(), errors.New("prompt: driver is required")
	}

	props := target.Props()
	value, err := ask(ctx, props, driver)
	if err != nil {
		return model.Null(), fmt.Errorf("prompt: %s: %w", message(props), err)
	}

	if err := target.Trigger(ctx, model.Event{Name: model.EventChange, Value: &value}); err != nil {
		return model.Null(), fmt.Errorf("prompt: dispatch change: %w", err)
	}
	return value, nil
}

func ask(ctx context.Context, props model.Props, driver PromptDriver) (model.Value, error) {
	msg := message(props)
	help := props.InvalidFeedback
	required := props.Attrs.Truthy("required")

	switch props.Type.OrDefault() {
	case model.TypeCheckbox:
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: msg, Default: props.Model.Truthy(), Help: help})
		if err != nil {
			return model.Null(), err
		}
		return model.Bool(ok), nil

	case model.TypeRadio:
		choice, hasChoice := props.Attrs.Get("value")
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: msg, Default: radioChecked(props, choice, hasChoice), Help: help})
		if err != nil {
			return model.Null(), err
		}
		switch {
		case !hasChoice:
			return model.Bool(ok), nil
		case ok:
			return model.String(choice.Text()), nil
		default:
			return model.Null(), nil
		}

	case model.TypeNumber:
		text, err := driver.Input(ctx, InputConfig{
			Message:   msg,
			Default:   props.Model.String(),
			Help:      help,
			Validator: numberValidator(required),
		})
		if err != nil {
			return model.Null(), err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return model.Null(), nil
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.Null(), err
		}
		return model.Number(n), nil

	case model.TypeDate:
		text, err := driver.Input(ctx, InputConfig{
			Message:   msg,
			Default:   props.Model.String(),
			Help:      help,
			Validator: dateValidator(required),
		})
		if err != nil {
			return model.Null(), err
		}
		return model.String(strings.TrimSpace(text)), nil

	case model.TypeTextarea:
		text, err := driver.TextArea(ctx, TextAreaConfig{Message: msg, Default: props.Model.String(), Help: help})
		if err != nil {
			return model.Null(), err
		}
		return model.String(text), nil

	case model.TypeSelect:
		if len(props.Options) == 0 {
			break
		}
		labels := make([]string, len(props.Options))
		current := -1
		for i, option := range props.Options {
			labels[i] = option.Text()
			if current < 0 && props.Model.String() == option.Value {
				current = i
			}
		}
		idx, err := driver.Select(ctx, SelectConfig{Message: msg, Options: labels, DefaultIndex: current, Help: help})
		if err != nil {
			return model.Null(), err
		}
		if idx < 0 || idx >= len(props.Options) {
			return model.Null(), fmt.Errorf("selection %d out of range", idx)
		}
		return model.String(props.Options[idx].Value), nil
	}

	text, err := driver.Input(ctx, InputConfig{
		Message:   msg,
		Default:   props.Model.String(),
		Help:      help,
		Validator: requiredValidator(required),
	})
	if err != nil {
		return model.Null(), err
	}
	return model.String(text), nil
}

func message(props model.Props) string {
	switch {
	case strings.TrimSpace(props.Label) != "":
		return props.Label
	case strings.TrimSpace(props.Name) != "":
		return props.Name
	default:
		return string(props.Type.OrDefault())
	}
}

func radioChecked(props model.Props, choice model.AttrValue, hasChoice bool) bool {
	if hasChoice {
		return props.Model.String() == choice.Text()
	}
	return props.Model.Truthy()
}

func requiredValidator(required bool) func(string) error {
	if !required {
		return nil
	}
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errors.New("value is required")
		}
		return nil
	}
}

func numberValidator(required bool) func(string) error {
	return func(answer string) error {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			if required {
				return errors.New("value is required")
			}
			return nil
		}
		if _, err := strconv.ParseFloat(answer, 64); err != nil {
			return fmt.Errorf("%q is not a number", answer)
		}
		return nil
	}
}

func dateValidator(required bool) func(string) error {
	return func(answer string) error {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			if required {
				return errors.New("value is required")
			}
			return nil
		}
		if _, err := time.Parse(dateLayout, answer); err != nil {
			return fmt.Errorf("%q is not a date (YYYY-MM-DD)", answer)
		}
		return nil
	}
}
