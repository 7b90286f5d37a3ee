// Package templates renders the embedded HTML pages.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/slitherhq/slither/internal/i18n"
	"github.com/slitherhq/slither/internal/model"
)

//go:embed html/*.html
var files embed.FS

const layoutFile = "html/base.layout.html"

var pageFiles = []string{
	"html/home.html",
	"html/login.html",
	"html/register.html",
	"html/game.html",
	"html/leaderboard.html",
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"inc": func(i int) int {
		return i + 1
	},
}

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string // "success", "danger", "info"
	Message string
}

// PageData carries everything the layout and pages can render
type PageData struct {
	Title string
	Path  string
	User  *model.User
	Flash *FlashMessage
	T     i18n.Strings
	Lang  string

	// Leaderboard rows
	Users []*model.User
}

// Renderer holds the parsed template set for each page
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		ts, err := template.New("").Funcs(functions).ParseFS(files, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		pages[file] = ts
	}
	return &Renderer{pages: pages}, nil
}

// Render executes a page template into w via a buffer, so a template error
// never produces a half-written response
func (r *Renderer) Render(w io.Writer, page string, data *PageData) error {
	name := "html/" + page
	ts, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	if data == nil {
		data = &PageData{}
	}
	if data.T == nil {
		data.T = i18n.Table(data.Lang)
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
