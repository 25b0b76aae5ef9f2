package csvrow

import (
	"strings"
	"unicode/utf8"
)

// Escape returns the RFC 4180 representation of value for a document using
// delimiter: if value contains the delimiter or a quote character it is
// wrapped in quotes with every internal quote doubled, otherwise value is
// returned unchanged without allocating. A zero or invalid delimiter defaults
// to ','.
//
// Escape is the inverse of the Row unescaping step for any value free of
// embedded line breaks.
func Escape(value string, delimiter rune) string {
	if delimiter == 0 || utf8.RuneLen(delimiter) < 0 {
		delimiter = ','
	}
	if !strings.ContainsRune(value, delimiter) && !strings.Contains(value, `"`) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Unescape applies the quote-stripping rule a non-literal Row applies to each
// field: if field is enclosed in quotes (and longer than a single quote
// character) the enclosing quotes are removed, and every doubled quote is
// collapsed to one. Feeding Unescape the fields of a literal-mode Row yields
// exactly what a non-literal Row would have returned.
func Unescape(field string) string {
	if len(field) > 1 && field[0] == '"' && field[len(field)-1] == '"' {
		field = field[1 : len(field)-1]
	}
	return collapseQuotes(field)
}

// Join escapes every field and joins them with delimiter, producing one CSV
// line. It is the row-level inverse of Fields: tokenizing the result in
// non-literal mode yields fields back, provided none contains a line break.
func Join(fields []string, delimiter rune) string {
	if delimiter == 0 || utf8.RuneLen(delimiter) < 0 {
		delimiter = ','
	}
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteRune(delimiter)
		}
		b.WriteString(Escape(field, delimiter))
	}
	return b.String()
}

// collapseQuotes rewrites every doubled quote to a single quote, returning s
// itself when no doubled quote is present.
func collapseQuotes(s string) string {
	if !strings.Contains(s, `""`) {
		return s
	}
	return strings.ReplaceAll(s, `""`, `"`)
}
