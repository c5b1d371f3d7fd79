package encode

type EncodeOption func(*EncState)

// EncodeLineEnding sets the terminator of synthesized lines. By default
// the terminator of the document's first terminated line is used, and
// the host platform's one for documents without any.
func EncodeLineEnding(eol string) EncodeOption {
	return func(es *EncState) { es.eol = eol }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
