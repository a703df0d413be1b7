package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read parses a textual board: the first non-blank line holds n, the next n
// lines hold the rows. Surrounding whitespace is trimmed from every line.
//
// Input is decoded as UTF-8 unless it starts with a UTF-8, UTF-16LE or
// UTF-16BE byte-order mark, in which case the mark selects the decoder.
// Lines after the n-th row are ignored.
func Read(r io.Reader) (*Board, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(decoded)

	n, found := 0, false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		n, found = v, true
		break
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read header: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	if n <= 0 {
		return nil, ErrDegenerate
	}

	rows := make([]string, 0, n)
	for len(rows) < n && sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read rows: %w", err)
	}

	return New(n, rows)
}
