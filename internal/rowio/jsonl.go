package rowio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// WriteJSONL writes one JSON object per row. Non-ASCII text is written as-is.
func WriteJSONL(w io.Writer, rows []bibleload.Row) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	for i, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encode row %d (%s): %w", i+1, row.Ref(), err)
		}
	}
	return bw.Flush()
}

// flexInt accepts 3, 3.0 and "3"; some producers quote every value.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || fl != float64(int(fl)) {
		return fmt.Errorf("not an integer: %s", data)
	}
	*f = flexInt(int(fl))
	return nil
}

type jsonRow struct {
	Book    *string  `json:"book"`
	Chapter *flexInt `json:"chapter"`
	Verse   *flexInt `json:"verse"`
	Text    *string  `json:"text"`
}

// ReadJSONL parses newline-delimited JSON rows, skipping blank lines.
func ReadJSONL(r io.Reader) ([]bibleload.Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []bibleload.Row
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var jr jsonRow
		if err := json.Unmarshal(line, &jr); err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", lineNumber, err, bibleload.ErrInvalidRow)
		}

		var missing []string
		if jr.Book == nil {
			missing = append(missing, "book")
		}
		if jr.Chapter == nil {
			missing = append(missing, "chapter")
		}
		if jr.Verse == nil {
			missing = append(missing, "verse")
		}
		if jr.Text == nil {
			missing = append(missing, "text")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("line %d: missing keys %s: %w", lineNumber, strings.Join(missing, ", "), bibleload.ErrInvalidRow)
		}

		row, err := normalize(*jr.Book, *jr.Text, int(*jr.Chapter), int(*jr.Verse), lineNumber)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl: %w", err)
	}

	return rows, nil
}
