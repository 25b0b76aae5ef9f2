package csvrow

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Row tokenizes a single line of delimiter-separated text into its fields,
// honoring RFC 4180 quoting: a quoted field may embed the delimiter, and a
// doubled quote inside a quoted field stands for one literal quote.
//
// A Row is single-use. It is created over one line, walked forward with Next
// until io.EOF, and discarded. It never parses across line boundaries;
// splitting a document into lines is the caller's job.
type Row struct {
	// Line holds the delimited fields. The Row borrows it for the whole
	// session; fields returned by Next may alias its storage.
	Line string
	// Comma is the field delimiter. Default is ','.
	Comma rune
	// Literal returns fields exactly as they appear in Line, enclosing and
	// escaping quotes included, instead of unescaping them.
	Literal bool

	pos     int
	prev    rune
	prevSet bool
}

// NewRow creates a Row over line. delimiter selects the field separator and
// literal selects verbatim output; see the Comma and Literal fields.
func NewRow(line string, delimiter rune, literal bool) *Row {
	return &Row{
		Line:    line,
		Comma:   delimiter,
		Literal: literal,
	}
}

// Next returns the next field of the row. It returns io.EOF once the row is
// exhausted, and keeps returning io.EOF thereafter. An empty line has no
// fields at all, while a line ending in a delimiter still carries one final
// empty field.
//
// Malformed quoting never fails: an orphaned or prematurely closed quote
// simply makes the surrounding text ordinary field content.
func (r *Row) Next() (string, error) {
	if r == nil || r.pos > len(r.Line) || len(r.Line) == 0 {
		return "", io.EOF
	}

	// An invalid rune would make utf8.RuneLen report -1 and stall the
	// cursor, so it falls back to ',' the same way the zero value does.
	comma := r.Comma
	if comma == 0 || utf8.RuneLen(comma) < 0 {
		comma = ','
	}

	byteLen := 0
	quoted := false

	for i := r.pos; i < len(r.Line); {
		c, size := utf8.DecodeRuneInString(r.Line[i:])

		if byteLen == 0 && c == '"' {
			quoted = true
		}

		if c == comma {
			// A delimiter ends the field unless we are inside quotes. Inside
			// quotes it only counts once a closing quote was just consumed,
			// and the field is longer than the lone quote that opened it.
			if !quoted || (byteLen > 1 && r.prevSet && r.prev == '"') {
				break
			}
		}

		byteLen += size
		r.prev, r.prevSet = c, true
		i += size
	}

	raw := r.Line[r.pos : r.pos+byteLen]

	// Re-derive quoted from the captured slice: a field that starts with a
	// quote but never receives a matching close (or is nothing but a single
	// quote) is not a quoted field.
	quoted = quoted && len(raw) > 1 && strings.HasSuffix(raw, `"`)

	// Advance past the slice plus the consumed delimiter. The final field has
	// no delimiter; the overshoot past the end of Line marks exhaustion.
	r.pos += len(raw) + utf8.RuneLen(comma)

	if r.Literal {
		return raw, nil
	}

	if quoted {
		raw = raw[1 : len(raw)-1]
	}
	return collapseQuotes(raw), nil
}

// Fields drains the row and returns all remaining fields.
func (r *Row) Fields() []string {
	var fields []string
	for {
		field, err := r.Next()
		if err != nil {
			return fields
		}
		fields = append(fields, field)
	}
}
