package web

import (
	"fmt"
	"log/slog"

	"github.com/signadot/prefs"
)

const (
	DefaultAddr  = "localhost:7070"
	DefaultTitle = "Preferences"
)

// Config holds the server settings.
type Config struct {
	Addr     string
	Title    string
	AuthKey  string
	SpellDir string
	// SpellCache bounds the number of languages the checker remembers.
	SpellCache int

	// Log receives request and error logs. Nil disables logging.
	Log *slog.Logger
}

// LoadConfig reads the server settings from the preferences file at
// path:
//
//	[server]
//	addr = localhost:7070
//	title = Preferences
//	auth.key = s3cret
//	[spell]
//	dir = /usr/share/prefs/dict
//	cache = 16
//
// A missing file gives the defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := prefs.Open(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Addr:     f.GetString("server.addr", DefaultAddr),
		Title:    f.GetString("server.title", DefaultTitle),
		AuthKey:  f.GetString("server.auth.key", ""),
		SpellDir: f.GetString("spell.dir", ""),
	}
	cfg.SpellCache = 16
	if n, ok := f.Node("spell.cache"); ok && n.HasValue() {
		v, err := n.Int()
		if err != nil {
			return nil, fmt.Errorf("%s: spell.cache: %w", path, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%s: spell.cache must be positive", path)
		}
		cfg.SpellCache = int(v)
	}
	return cfg, nil
}
