package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"taskassign/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 02, 2006")
	},
	"formatDateTime": func(t time.Time) string {
		return t.Format("Jan 02, 2006 15:04")
	},
	"fielderr": func(errs *model.ValidationErrors, field string) string {
		if errs == nil {
			return ""
		}
		return errs.Fields[field]
	},
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}
		tmpl, err := template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes a full page. The template executes into a buffer first so a
// template error never leaks a half-written response.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data map[string]any) error {
	tmpl, ok := rn.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
