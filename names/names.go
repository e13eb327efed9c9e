// Package names derives wire names from Go accessor names.
//
// A Formatter maps an exported struct field name such as "PublishDate" to
// the name a document uses for it, for example "publishDate", "publish_date"
// or "publish-date". Registries apply their formatter once at registration
// time, so formatting cost is never paid during serialization.
package names

import (
	"strings"
	"unicode"
)

// Formatter maps an accessor name to a wire name.
type Formatter func(accessor string) string

// CamelCase maps PublishDate to publishDate and ISBN to isbn.
func CamelCase(accessor string) string {
	words := split(accessor)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(w)
	}
	return b.String()
}

// SnakeCase maps PublishDate to publish_date.
func SnakeCase(accessor string) string {
	return joinLower(split(accessor), '_')
}

// KebabCase maps PublishDate to publish-date.
func KebabCase(accessor string) string {
	return joinLower(split(accessor), '-')
}

// PascalCase keeps the accessor name as the wire name.
func PascalCase(accessor string) string {
	return accessor
}

func joinLower(words []string, sep byte) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}

// split breaks an accessor name into words. An uppercase run belongs to one
// word except for its last rune when a lowercase rune follows, so
// "HTTPServer" splits into HTTP, Server and "PublishDate" into Publish,
// Date. Digits extend the current word.
func split(s string) []string {
	var words []string
	runes := []rune(s)
	n := len(runes)
	start := 0
	for i := 1; i < n; i++ {
		r := runes[i]
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && !unicode.IsUpper(prev) && !unicode.IsDigit(prev):
			words = append(words, string(runes[start:i]))
			start = i
		case unicode.IsLower(r) && unicode.IsUpper(prev) && i-start > 1:
			words = append(words, string(runes[start:i-1]))
			start = i - 1
		}
	}
	if start < n {
		words = append(words, string(runes[start:]))
	}
	return words
}
