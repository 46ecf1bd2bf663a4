package digest

import (
	"bytes"
	"fmt"
	"html/template"
)

// Renderer renders a newsletter through the HTML template. The
// template is parsed once at construction; a missing or unparsable
// template file is a startup error.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(templatePath string) (*Renderer, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load newsletter template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Run produces the newsletter HTML document. Output is deterministic:
// the same newsletter renders to byte-identical content.
func (r *Renderer) Run(newsletter Newsletter) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, newsletter); err != nil {
		return nil, fmt.Errorf("failed to render newsletter: %w", err)
	}
	return buf.Bytes(), nil
}
