package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/export"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/spell"
)

// Pref is one row of the index page.
type Pref struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type PrefValue struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type SetRequest struct {
	Value *string `json:"value"`
}

type SpellResponse struct {
	Lang         string              `json:"lang"`
	Misspellings []spell.Misspelling `json:"misspellings"`
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

func listPrefs(tree *prefs.Tree) []Pref {
	var res []Pref
	_ = tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if v, ok := n.Value(); ok {
			res = append(res, Pref{Path: n.Path(), Value: v})
		}
		return true, nil
	})
	return res
}

// e.GET("/", srv.WebHome)
func (srv *Server) WebHome(c echo.Context) error {
	info := pongo2.Context{
		"title": srv.cfg.Title,
		"file":  srv.file.Path(),
	}
	err := srv.file.View(func(tree *prefs.Tree) error {
		info["prefs"] = listPrefs(tree)
		return nil
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", info)
}

// e.GET("/api/prefs/*", srv.GetPref)
func (srv *Server) GetPref(c echo.Context) error {
	path := c.Param("*")
	res := PrefValue{Path: path}
	err := srv.file.View(func(tree *prefs.Tree) error {
		n := tree.Root
		if path != "" {
			var ok bool
			n, ok = tree.Lookup(path)
			if !ok {
				return echo.NewHTTPError(http.StatusNotFound, "no preference "+path)
			}
		}
		res.Value = export.Value(n)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// e.PUT("/api/prefs/*", srv.PutPref)
func (srv *Server) PutPref(c echo.Context) error {
	path := c.Param("*")
	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Value == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing value")
	}
	if err := srv.file.Set(path, *req.Value); err != nil {
		var pe *ir.PathError
		if errors.As(err, &pe) || errors.Is(err, ir.ErrBadValue) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	if err := srv.file.Save(); err != nil {
		return err
	}
	srv.log.Info("preference set", "path", path)
	return c.JSON(http.StatusOK, PrefValue{Path: path, Value: *req.Value})
}

// e.GET("/api/spell", srv.Spell)
func (srv *Server) Spell(c echo.Context) error {
	if srv.spell == nil {
		return echo.NewHTTPError(http.StatusNotFound, "spell checking is not configured")
	}
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = srv.file.GetString("spell.lang", "")
	}
	if lang == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing lang")
	}
	ms, err := srv.spell.Check(c.QueryParam("text"), lang)
	switch {
	case errors.Is(err, spell.ErrBadLanguage):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, spell.ErrNoDictionary):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case err != nil:
		return err
	}
	tag, _ := spell.Canonical(lang)
	if ms == nil {
		ms = []spell.Misspelling{}
	}
	return c.JSON(http.StatusOK, SpellResponse{Lang: tag, Misspellings: ms})
}
