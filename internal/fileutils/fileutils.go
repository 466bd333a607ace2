// Package fileutils opens statement files and decodes them to UTF-8.
package fileutils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/raiffeisen-csv/internal/parsererror"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is UTF-8 with an optional byte order mark.
const DefaultCharset = "utf-8-sig"

// charsetAliases maps common non-WHATWG spellings onto labels charset.Lookup knows.
var charsetAliases = map[string]string{
	"latin-1":     "latin1",
	"iso8859-1":   "iso-8859-1",
	"iso8859-15":  "iso-8859-15",
	"windows1252": "windows-1252",
}

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// LookupEncoding resolves a charset name to an encoding and its canonical name.
// Every UTF-8 spelling, and the empty name, resolve to UTF-8 with BOM removal.
func LookupEncoding(name string) (encoding.Encoding, string, error) {
	label := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch label {
	case "", "utf-8-sig", "utf8-sig", "utf-8", "utf8":
		return unicode.UTF8BOM, "utf-8", nil
	}
	if alias, ok := charsetAliases[label]; ok {
		label = alias
	}

	enc, canonical := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("unknown charset %q", name)
	}
	return enc, canonical, nil
}

// Decode converts raw bytes in charsetName to UTF-8. Any failure, including an
// unknown charset or invalid UTF-8 input, is a *parsererror.DecodingError.
func Decode(raw []byte, charsetName, filePath string) ([]byte, error) {
	enc, canonical, err := LookupEncoding(charsetName)
	if err != nil {
		return nil, &parsererror.DecodingError{FilePath: filePath, Charset: charsetName, Err: err}
	}

	if canonical == "utf-8" && !utf8.Valid(raw) {
		return nil, &parsererror.DecodingError{FilePath: filePath, Charset: charsetName, Err: errInvalidUTF8}
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, &parsererror.DecodingError{FilePath: filePath, Charset: charsetName, Err: err}
	}
	return out, nil
}

// DecodeReader reads r to the end and decodes it with Decode.
func DecodeReader(r io.Reader, charsetName, filePath string) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return Decode(raw, charsetName, filePath)
}

// ReadDecoded reads the file at path and decodes it. The file is closed before
// returning, whatever the outcome.
func ReadDecoded(path, charsetName string) (data []byte, err error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return DecodeReader(file, charsetName, path)
}
