// Package views holds the server-rendered pages, embedded into the binary.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine returns the html engine; templates are addressed as "dir/name".
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("formatTime", func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.UTC().Format("2006-01-02 15:04 UTC")
	})
	engine.AddFunc("deref", func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	})
	return engine
}
