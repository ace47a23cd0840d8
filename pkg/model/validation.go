package model

// Validation is the derived validation state of a FormGroup.
type Validation string

const (
	Valid   Validation = "valid"
	Invalid Validation = "invalid"
)

const (
	ClassValid           = "is-valid"
	ClassInvalid         = "is-invalid"
	ClassValidFeedback   = "valid-feedback"
	ClassInvalidFeedback = "invalid-feedback"
)

// Class returns the control class for the state.
func (v Validation) Class() string {
	if v == Invalid {
		return ClassInvalid
	}
	return ClassValid
}

// Missing reports whether the model leaves a required control unsatisfied.
// An unchecked checkbox is missing; a radio or any other control is missing
// when its model is empty.
func (p Props) Missing() bool {
	if p.Type == TypeCheckbox {
		return !p.Model.Truthy()
	}
	return p.Model.IsEmpty()
}

// Validation derives the state. An explicit Invalid override wins; otherwise
// a missing model on a required control is invalid and everything else is
// valid.
func (p Props) Validation() Validation {
	if p.Invalid != nil {
		if *p.Invalid {
			return Invalid
		}
		return Valid
	}
	if p.Attrs.Truthy("required") && p.Missing() {
		return Invalid
	}
	return Valid
}
