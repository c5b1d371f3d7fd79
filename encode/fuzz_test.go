package encode

import (
	"testing"

	"github.com/signadot/prefs/parse"
)

func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"a = 1\n",
		"a=1",
		"# c\n\n[s]\nk = v # t\r\n",
		"k = \"q \\\" \\u00e9\"\n",
		"k = 'single \\' quote'\n",
		"a =\n",
		"\uFEFFa = 1\n",
		"[a.b]\nc.d = e\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		tree, err := parse.ParseString(s)
		if err != nil {
			return
		}
		if got := Source(tree); got != s {
			t.Fatalf("round trip:\n%q\n%q", s, got)
		}
		if err := tree.Set("fuzz.key", s); err != nil {
			t.Fatal(err)
		}
		out := Source(tree, EncodeLineEnding("\n"))
		re, err := parse.ParseString(out)
		if err != nil {
			t.Fatalf("re-parse %q: %v", out, err)
		}
		if got := re.GetString("fuzz.key", "\x00"); got != s {
			t.Fatalf("read after write: %q want %q", got, s)
		}
	})
}
