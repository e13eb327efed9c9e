package xmltext

type EncState struct {
	indent int
	decl   bool
}

type EncodeOption func(*EncState)

// Indent pretty-prints child elements with n spaces per nesting level.
// Zero keeps the whole document on one line.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Declaration emits the <?xml?> header before the root element.
func Declaration(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}
