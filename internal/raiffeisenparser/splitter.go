package raiffeisenparser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// newRowReader returns a CSV reader for delimiter that accepts ragged rows and
// quotes inside unquoted fields. Column count is checked later, per field, by
// the mapper.
func newRowReader(r io.Reader, delimiter rune) gocsv.CSVReader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// fieldPositioner is implemented by *csv.Reader; it lets error messages carry
// the physical line of a record even when quoted fields span lines.
type fieldPositioner interface {
	FieldPos(field int) (line, column int)
}

// rowSource yields trimmed records together with their line number.
type rowSource struct {
	reader gocsv.CSVReader
	count  int
}

func newRowSource(reader gocsv.CSVReader) *rowSource {
	return &rowSource{reader: reader}
}

// next returns io.EOF once the input is exhausted.
func (s *rowSource) next() ([]string, int, error) {
	fields, err := s.reader.Read()
	if err != nil {
		return nil, 0, err
	}
	s.count++

	line := s.count
	if p, ok := s.reader.(fieldPositioner); ok {
		line, _ = p.FieldPos(0)
	}
	return trimFields(fields), line, nil
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// SplitLine splits one raw line on delimiter following CSV quoting rules and
// trims every field. A blank line yields no fields.
func SplitLine(line string, delimiter rune) ([]string, error) {
	fields, err := newRowReader(strings.NewReader(line), delimiter).Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return trimFields(fields), nil
}
