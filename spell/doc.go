// Package spell checks text against word-list dictionaries.
//
// A dictionary for language tag "en-US" is the file "en-US.dic" in the
// dictionary directory: one word per line, blank lines and lines
// starting with '#' ignored. Words are compared after Unicode case
// folding and NFC normalization.
//
// Whether a language can be checked is memoized in a [Cache], an
// explicit object owned by the caller:
//
//	c, _ := spell.NewChecker("/usr/share/prefs/dict", 64)
//	ok, _ := c.CanCheck("en")
//	miss, err := c.Check("helo world", "en")
//	c.Cache().Reset()
package spell
