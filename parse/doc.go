// Package parse builds [ir.Tree] values from preferences text.
//
// # Usage
//
//	tree, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// INI dialect, duplicates are errors
//	tree, err := parse.Parse(data, parse.ParseINI(), parse.ParseStrict())
//
// Every source line is kept on the tree so that the encoder can write
// the document back unchanged. Key/value lines are placed in the tree
// under the running section prefix set by the last "[section]" header.
//
// Two structure warnings are reported without failing the parse:
// a key assigned twice (the later line wins) and a key that holds a
// scalar and also gets children. Warnings are stored in
// [ir.Tree.Warnings], passed to [ParseWarnings] callbacks and logged to
// a [ParseLogger] if one is given.
//
// # Related Packages
//
//   - github.com/signadot/prefs/token - Line tokenization
//   - github.com/signadot/prefs/ir - Tree representation
//   - github.com/signadot/prefs/encode - Write trees back as text
package parse
