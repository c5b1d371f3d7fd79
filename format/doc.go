// Package format names the text dialects a preferences document can be
// read in and the document formats a tree can be exported to.
//
// # Usage
//
//	f, err := format.ParseFormat("ini")
//	tree, err := parse.Parse(data, parse.ParseFormat(f))
//
// The prefs and ini dialects differ only in which comment markers and
// key/value separators the tokenizer accepts. JSON and YAML are export
// formats; they cannot be parsed back into a tree.
//
// # Related Packages
//
//   - github.com/signadot/prefs/token - Tokenization
//   - github.com/signadot/prefs/export - Export to JSON and YAML
package format
