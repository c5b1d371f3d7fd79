package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/prefs"
)

const testDoc = `# editor settings
[editor]
font = mono
size = 12
title = <b>bold</b>
`

func newTestServer(t *testing.T, cfg *Config) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.conf")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := prefs.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	srv, err := NewServer(cfg, f)
	if err != nil {
		t.Fatal(err)
	}
	return srv, path
}

func do(srv *Server, method, target, body string, hdr ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return res
}

func TestHome(t *testing.T) {
	srv, _ := newTestServer(t, &Config{Title: "My Prefs"})
	rec := do(srv, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>My Prefs</title>", "editor.font", "mono", "editor.size", "&lt;b&gt;bold&lt;/b&gt;"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q:\n%s", want, body)
		}
	}
}

func TestGetPref(t *testing.T) {
	srv, _ := newTestServer(t, &Config{})
	rec := do(srv, http.MethodGet, "/api/prefs/editor.font", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	want := map[string]any{"path": "editor.font", "value": "mono"}
	if d := cmp.Diff(want, decode(t, rec)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	rec = do(srv, http.MethodGet, "/api/prefs/editor", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	want = map[string]any{
		"path": "editor",
		"value": map[string]any{
			"font":  "mono",
			"size":  "12",
			"title": "<b>bold</b>",
		},
	}
	if d := cmp.Diff(want, decode(t, rec)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	rec = do(srv, http.MethodGet, "/api/prefs/editor.missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
	if _, ok := decode(t, rec)["error"]; !ok {
		t.Errorf("no error field in %s", rec.Body)
	}
}

func TestPutPref(t *testing.T) {
	srv, path := newTestServer(t, &Config{})
	rec := do(srv, http.MethodPut, "/api/prefs/editor.size", `{"value":"14"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	rec = do(srv, http.MethodPut, "/api/prefs/view.wrap", `{"value":"true"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `view.wrap = true
# editor settings
[editor]
font = mono
size = 14
title = <b>bold</b>
`
	if got := string(d); got != want {
		t.Errorf("saved file:\n%s\nwant:\n%s", got, want)
	}

	rec = do(srv, http.MethodGet, "/api/prefs/view.wrap", "")
	if got := decode(t, rec)["value"]; got != "true" {
		t.Errorf("read back %v", got)
	}
}

func TestPutPrefErrors(t *testing.T) {
	srv, _ := newTestServer(t, &Config{})
	tests := []struct {
		target, body string
		code         int
	}{
		{"/api/prefs/editor..size", `{"value":"1"}`, http.StatusBadRequest},
		{"/api/prefs/editor.size", `{}`, http.StatusBadRequest},
		{"/api/prefs/editor.size", `{"value":`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		rec := do(srv, http.MethodPut, tc.target, tc.body)
		if rec.Code != tc.code {
			t.Errorf("PUT %s %s: status %d, want %d", tc.target, tc.body, rec.Code, tc.code)
		}
	}
	if srv.file.Dirty() {
		t.Error("failed puts left the file dirty")
	}
}

func TestAuth(t *testing.T) {
	srv, _ := newTestServer(t, &Config{AuthKey: "s3cret"})
	if rec := do(srv, http.MethodGet, "/", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status %d", rec.Code)
	}
	if rec := do(srv, http.MethodGet, "/api/prefs/editor.font", "", "Authorization", "Bearer nope"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad key: status %d", rec.Code)
	}
	if rec := do(srv, http.MethodGet, "/api/prefs/editor.font", "", "Authorization", "Bearer s3cret"); rec.Code != http.StatusOK {
		t.Errorf("good key: status %d", rec.Code)
	}
	if rec := do(srv, http.MethodGet, "/_health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: status %d", rec.Code)
	}
}

func TestSpell(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.dic"), []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, &Config{SpellDir: dir})
	rec := do(srv, http.MethodGet, "/api/spell?lang=en&text=helo+world", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	want := map[string]any{
		"lang": "en",
		"misspellings": []any{
			map[string]any{"word": "helo", "offset": float64(0), "suggestions": []any{"hello"}},
		},
	}
	if d := cmp.Diff(want, decode(t, rec)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	tests := []struct {
		target string
		code   int
	}{
		{"/api/spell?lang=fr&text=bonjour", http.StatusNotFound},
		{"/api/spell?lang=!!&text=x", http.StatusBadRequest},
		{"/api/spell?text=x", http.StatusBadRequest},
	}
	for _, tc := range tests {
		if rec := do(srv, http.MethodGet, tc.target, ""); rec.Code != tc.code {
			t.Errorf("GET %s: status %d, want %d", tc.target, rec.Code, tc.code)
		}
	}
}

func TestSpellNotConfigured(t *testing.T) {
	srv, _ := newTestServer(t, &Config{})
	if rec := do(srv, http.MethodGet, "/api/spell?lang=en&text=x", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status %d", rec.Code)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.conf")
	src := "[server]\naddr = :8080\nauth.key = k\n[spell]\ndir = /dict\ncache = 4\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Addr: ":8080", Title: DefaultTitle, AuthKey: "k", SpellDir: "/dict", SpellCache: 4}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != DefaultAddr || cfg.SpellCache != 16 {
		t.Errorf("defaults: %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("spell.cache = lots\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for non-integer spell.cache")
	}
}
