package core

// convert.go turns raw survey export text into typed row values.
//
// These functions handle the messy reality of exported survey files:
//   - UTF-8 BOM from spreadsheet exports
//   - Invalid UTF-8 byte sequences
//   - Decomposed accents (NFD) from some operating systems
//   - Excel formula prefixes (="value") and stray quotes
//   - Windows line endings and padded cells
//
// The delimiter is fixed; no quoting or escaping is recognized.

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Delimiter separates fields on every line of a survey export.
const Delimiter = ","

// minTokens is the fewest fields a data line needs to carry a subject and a value.
const minTokens = 2

// utf8BOM is the byte order mark prepended by Windows spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// numericRegex validates that a token is a plain decimal number.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CleanCell removes common export artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
// - Composes accents into NFC form
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	}

	s = strings.Trim(s, `"'`)

	return norm.NFC.String(strings.TrimSpace(s))
}

// SplitLines decodes a whole export into its non-empty, trimmed lines.
// A leading BOM is dropped and invalid UTF-8 is replaced with '?'.
func SplitLines(content []byte) []string {
	content = bytes.TrimPrefix(content, utf8BOM)
	text := strings.ToValidUTF8(string(content), "?")

	raw := strings.Split(strings.TrimSpace(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// ParseHeader splits a header line into cleaned raw header strings.
func ParseHeader(line string) []string {
	parts := strings.Split(line, Delimiter)
	headers := make([]string, len(parts))
	for i, p := range parts {
		headers[i] = CleanCell(p)
	}
	return headers
}

// ParseValue types a single token. Tokens that look like a finite decimal
// number become numbers; everything else, including the empty string, stays text.
func ParseValue(token string) Value {
	if token == "" || !numericRegex.MatchString(token) {
		return Value{Raw: token}
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return Value{Raw: token}
	}
	return Value{Raw: token, Num: n, IsNum: true}
}

// ParseLine tokenizes one data line against the file's headers.
//
// Tokens are matched to headers by position. A line with fewer than two tokens,
// or fewer tokens than headers, is truncated and returns ErrMalformedRow.
// Tokens past the last header are ignored.
func ParseLine(line string, headers []string) (ParsedRow, error) {
	tokens := strings.Split(line, Delimiter)
	if len(tokens) < minTokens {
		return nil, fmt.Errorf("%w: %d field(s), need at least %d", ErrMalformedRow, len(tokens), minTokens)
	}
	if len(tokens) < len(headers) {
		return nil, fmt.Errorf("%w: %d field(s), header has %d", ErrMalformedRow, len(tokens), len(headers))
	}

	row := make(ParsedRow, len(headers))
	for i, h := range headers {
		row[h] = ParseValue(CleanCell(tokens[i]))
	}
	return row, nil
}
