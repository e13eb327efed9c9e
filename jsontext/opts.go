package jsontext

type EncState struct {
	indent     int
	escapeHTML bool
}

type EncodeOption func(*EncState)

// Indent pretty-prints with n spaces per nesting level. Zero keeps the
// output on one line.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EscapeHTML escapes <, > and & inside strings.
func EscapeHTML(v bool) EncodeOption {
	return func(es *EncState) { es.escapeHTML = v }
}
