package web

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/spell"
)

const (
	httpTimeout        = time.Minute
	httpMaxHeaderBytes = 1 << 20
)

// Server serves one preferences file.
type Server struct {
	cfg   *Config
	file  *prefs.File
	spell *spell.Checker
	log   *slog.Logger
	echo  *echo.Echo
	httpd *http.Server
}

// NewServer returns a server for file. Spell checking is available
// when cfg.SpellDir is set.
func NewServer(cfg *Config, file *prefs.File) (*Server, error) {
	srv := &Server{cfg: cfg, file: file, log: cfg.Log}
	if srv.log == nil {
		srv.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.SpellDir != "" {
		size := cfg.SpellCache
		if size <= 0 {
			size = 16
		}
		c, err := spell.NewChecker(cfg.SpellDir, size)
		if err != nil {
			return nil, err
		}
		srv.spell = c
	}
	r, err := newRenderer(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(slogecho.New(srv.log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.HTTPErrorHandler = srv.errorHandler
	e.Renderer = r
	if cfg.AuthKey != "" {
		e.Use(srv.authMiddleware())
	}

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/", srv.WebHome)
	e.GET("/api/prefs", srv.GetPref)
	e.GET("/api/prefs/*", srv.GetPref)
	e.PUT("/api/prefs/*", srv.PutPref)
	e.GET("/api/spell", srv.Spell)

	srv.echo = e
	srv.httpd = &http.Server{
		Addr:           cfg.Addr,
		Handler:        srv,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}
	return srv, nil
}

func (srv *Server) authMiddleware() echo.MiddlewareFunc {
	key := []byte(srv.cfg.AuthKey)
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/_health"
		},
		Validator: func(auth string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(auth), key) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	})
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

// ListenAndServe serves until Shutdown is called, then returns nil.
func (srv *Server) ListenAndServe() error {
	srv.log.Info("starting server", "bind", srv.cfg.Addr, "file", srv.file.Path())
	err := srv.httpd.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (srv *Server) Shutdown(ctx context.Context) error {
	srv.log.Info("shutting down")
	return srv.httpd.Shutdown(ctx)
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Status: "ok", Daemon: "prefs"})
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		errorMessage = fmt.Sprintf("%v", he.Message)
	}
	if code >= 500 {
		srv.log.Warn("prefs-http-internal-error", "err", err)
	}
	if debug.Web() {
		debug.Logf("web: %s %s: %d %v\n", c.Request().Method, c.Request().URL.Path, code, err)
	}
	if c.Response().Committed {
		return
	}
	if isAPI(c) {
		if errorMessage == "" {
			errorMessage = http.StatusText(code)
		}
		_ = c.JSON(code, map[string]string{"error": errorMessage})
		return
	}
	data := pongo2.Context{
		"statusCode":   code,
		"errorMessage": errorMessage,
	}
	if err := c.Render(code, "error.html", data); err != nil {
		srv.log.Error("rendering error page", "err", err)
	}
}
