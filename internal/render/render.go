// Package render executes a theme's templates against resolved page data
// to produce the final self-contained HTML document.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/alnah/go-genkan/internal/theme"
)

// Rendering errors.
var (
	ErrStyleRender = errors.New("stylesheet rendering failed")
	ErrPageRender  = errors.New("page rendering failed")
)

// Renderer executes one theme's templates. Both templates are parsed at
// construction so a malformed theme fails before any asset work starts.
type Renderer struct {
	page   *template.Template
	style  *texttemplate.Template
	script string
}

// New parses the theme's page and stylesheet templates.
func New(t *theme.Theme) (*Renderer, error) {
	page, err := template.New(theme.TemplateFile).Parse(t.Template)
	if err != nil {
		return nil, fmt.Errorf("parsing theme %q page template: %w", t.Name, err)
	}

	// The stylesheet is a text template: CSS needs no contextual escaping
	// and the values are resolved fragments, not user-facing markup.
	style, err := texttemplate.New(theme.StyleFile).Parse(t.Style)
	if err != nil {
		return nil, fmt.Errorf("parsing theme %q stylesheet: %w", t.Name, err)
	}

	return &Renderer{page: page, style: style, script: t.Script}, nil
}

// Render produces the final HTML document. The stylesheet template runs
// first; its output and the theme script are handed to the page template
// through the html/template trust types.
func (r *Renderer) Render(ctx context.Context, page Page, styles Styles) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var css bytes.Buffer
	if err := r.style.Execute(&css, styles); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleRender, err)
	}
	page.Style = SafeCSS(css.String())
	page.Script = template.JS(r.script) // #nosec G203 -- theme scripts are authored files, not user input

	var out bytes.Buffer
	if err := r.page.Execute(&out, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return out.String(), nil
}

// SafeCSS escapes sequences that could close a <style> block early and
// marks the result as trusted CSS for the page template.
func SafeCSS(css string) template.CSS {
	return template.CSS(strings.ReplaceAll(css, "</", `<\/`)) // #nosec G203 -- closing sequences escaped above
}
