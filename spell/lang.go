package spell

import (
	"fmt"

	"golang.org/x/text/language"
)

// Canonical returns the canonical BCP 47 form of tag ("en_us" gives
// "en-US").
func Canonical(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrBadLanguage, tag, err)
	}
	return t.String(), nil
}
