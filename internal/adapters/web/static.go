package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Page serves the chat widget.
func Page() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: static files: " + err.Error())
	}
	return http.FileServerFS(sub)
}
