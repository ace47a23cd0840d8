package components

import "github.com/goliatone/go-formgroup/pkg/model"

// Attribute is one rendered attribute. Bare attributes render without a
// value.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Bare  bool   `json:"bare"`
}

// Option is a rendered select or radio option.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

// Control is the view model a renderer turns into markup.
type Control struct {
	Type       model.InputType `json:"type"`
	Attributes []Attribute     `json:"attributes"`
	// Text is the textarea body.
	Text    string   `json:"text"`
	Options []Option `json:"options"`
	// Content is sanitised child markup appended inside a select.
	Content string `json:"content"`
}

// Attr returns the value of the named attribute.
func (c Control) Attr(name string) (Attribute, bool) {
	for _, attr := range c.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}
