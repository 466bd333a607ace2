// Package dateutils parses and formats statement dates.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the layout used when dates are written out.
const DateLayoutISO = "2006-01-02"

// strftimeDirectives maps the strftime directives used by bank layouts to Go
// layout elements. Day and month accept one or two digits like strptime does.
var strftimeDirectives = map[byte]string{
	'd': "2",
	'm': "1",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'M': "04",
	'S': "05",
	'b': "Jan",
	'B': "January",
	'%': "%",
}

// LayoutFromStrftime converts a strftime style format such as "%d.%m.%Y" to a
// Go layout. A format without '%' is assumed to already be a Go layout.
func LayoutFromStrftime(format string) (string, error) {
	if !strings.Contains(format, "%") {
		return format, nil
	}

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			return "", fmt.Errorf("dangling %% in date format %q", format)
		}
		i++
		elem, ok := strftimeDirectives[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in date format %q", format[i], format)
		}
		b.WriteString(elem)
	}
	return b.String(), nil
}

// ParseDate parses value with layout after trimming surrounding whitespace.
// The result is midnight UTC for date-only layouts.
func ParseDate(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", value, err)
	}
	return t, nil
}

// ToISODate formats date as YYYY-MM-DD; the zero time formats as "".
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}
