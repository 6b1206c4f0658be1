package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data bag every view receives.
type Page struct {
	Title    string
	LoggedIn bool
	Errors   []string
	Notices  []string
	Data     any
}

// Renderer turns a view name and a Page into an HTML response.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded template set, including the shared
// header and footer partials.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing view templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named view. The template executes into a buffer
// first so a rendering failure never emits a half-written page.
func (v *Renderer) Render(w http.ResponseWriter, name string, page Page) {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, name, page); err != nil {
		log.Printf("Error rendering view %q: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
