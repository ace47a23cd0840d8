// Package formgroup implements the FormGroup component: a server-rendered
// form control wrapped with its label and validation feedback.
//
// A FormGroup is mounted with model.Props, rendered to HTML through the
// control registry and template engine, and re-rendered after SetProps.
// Trigger dispatches DOM events to the control; binding events (keyup, input,
// change) emit "update" with the new value so a parent can keep its bound
// model in sync:
//
//	fg, _ := formgroup.New(model.Props{Model: model.String("Ada"), Label: "Name"})
//	fg.OnUpdate(func(v model.Value) { user.Name = v.String() })
//	html, _ := fg.Render(ctx)
package formgroup
