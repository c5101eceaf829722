package rowio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// WriteCSV writes the book,chapter,verse,text header followed by one record per row.
func WriteCSV(w io.Writer, rows []bibleload.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.Book, strconv.Itoa(row.Chapter), strconv.Itoa(row.Verse), row.Text}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.Ref(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows by header name, so column order does not matter.
func ReadCSV(r io.Reader) ([]bibleload.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %v: %w", err, bibleload.ErrInvalidRow)
	}

	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []bibleload.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %v: %w", err, bibleload.ErrInvalidRow)
		}
		line, _ := cr.FieldPos(0)

		get := func(name string) string {
			if i := idx[name]; i < len(record) {
				return record[i]
			}
			return ""
		}

		chapter, err := strconv.Atoi(strings.TrimSpace(get("chapter")))
		if err != nil {
			return nil, fmt.Errorf("line %d: chapter %q is not an integer: %w", line, get("chapter"), bibleload.ErrInvalidRow)
		}
		verse, err := strconv.Atoi(strings.TrimSpace(get("verse")))
		if err != nil {
			return nil, fmt.Errorf("line %d: verse %q is not an integer: %w", line, get("verse"), bibleload.ErrInvalidRow)
		}

		row, err := normalize(get("book"), get("text"), chapter, verse, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		idx[name] = i
	}

	var missing []string
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv header is missing columns: %s: %w", strings.Join(missing, ", "), bibleload.ErrInvalidRow)
	}
	return idx, nil
}
