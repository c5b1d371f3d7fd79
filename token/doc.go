// Package token provides line tokenization for preferences documents.
//
// [Tokenize] splits a document into [Line] records. Every record keeps
// the verbatim pieces of its source line (indentation, key text,
// separator, value token, trailing comment and line terminator) so that
// [Line.Bytes] reproduces the input exactly.
//
// Lexical errors are reported as [*FormatError], which carries the
// position of the offending byte and wraps one of the Err* sentinels.
package token
