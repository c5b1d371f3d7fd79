package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*
var templateFS embed.FS

// renderer is an echo.Renderer over the embedded pongo2 templates,
// compiled once.
type renderer struct {
	tpls map[string]*pongo2.Template
}

func newRenderer(fsys fs.FS, dir string) (*renderer, error) {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	r := &renderer{tpls: make(map[string]*pongo2.Template, len(ents))}
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		d, err := fs.ReadFile(fsys, path.Join(dir, ent.Name()))
		if err != nil {
			return nil, err
		}
		tpl, err := pongo2.FromBytes(d)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", ent.Name(), err)
		}
		r.tpls[ent.Name()] = tpl
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tpl, ok := r.tpls[name]
	if !ok {
		return fmt.Errorf("no template %q", name)
	}
	ctx, ok := data.(pongo2.Context)
	if !ok {
		return fmt.Errorf("template %q: data must be a pongo2.Context, got %T", name, data)
	}
	return tpl.ExecuteWriter(ctx, w)
}
