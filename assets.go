package formgroup

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-formgroup/pkg/components"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// EmbeddedTemplates exposes the built-in control templates so callers can
// reuse or extend them as theme partials.
func EmbeddedTemplates() fs.FS {
	return components.TemplatesFS()
}

// RuntimeAssetsFS exposes the browser runtime that turns data-formgroup-on
// listeners into "formgroup:update" events.
//
// Typical mount:
//
//	mux.Handle("/formgroup/",
//	  http.StripPrefix("/formgroup/",
//	    http.FileServerFS(formgroup.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
