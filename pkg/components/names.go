package components

// Partial keys a theme may override, mapped onto template paths.
const (
	PartialGroup    = "formgroup.group"
	PartialInput    = "formgroup.input"
	PartialTextarea = "formgroup.textarea"
	PartialSelect   = "formgroup.select"
)

const templatePrefix = "templates/"

// Template paths inside TemplatesFS.
const (
	TemplateGroup    = templatePrefix + "group.tmpl"
	TemplateInput    = templatePrefix + "input.tmpl"
	TemplateTextarea = templatePrefix + "textarea.tmpl"
	TemplateSelect   = templatePrefix + "select.tmpl"
)

// DefaultPartials maps every partial key onto the embedded template.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialGroup:    TemplateGroup,
		PartialInput:    TemplateInput,
		PartialTextarea: TemplateTextarea,
		PartialSelect:   TemplateSelect,
	}
}
