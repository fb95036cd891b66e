// Package templates renders the generated project artifacts from an
// embedded template set.
package templates

import (
	"context"
	"embed"
	"errors"
	"strings"
	"text/template"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer implements ports.Renderer on top of text/template. Templates
// are parsed once at construction; rendering is read-only afterwards and
// safe for concurrent use.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded template set. Missing context keys are execution
// errors rather than silent blanks, so a template and the context builder
// cannot drift apart unnoticed.
func New() (*Renderer, error) {
	tmpl, err := template.New("artifacts").
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse artifact templates")
	}
	return &Renderer{templates: tmpl}, nil
}

// Render produces the text of one artifact. name is the artifact file name
// as listed by domain.GeneratedFiles; the template is resolved by appending
// the .tmpl suffix.
func (r *Renderer) Render(_ context.Context, name string, data domain.TemplateContext) (string, error) {
	tmpl := r.templates.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownFile, ""), "file", name)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", zerr.With(errors.Join(domain.ErrRender, err), "file", name)
	}
	return buf.String(), nil
}
