// Package importer holds the pure data transformations behind the bulk
// spreadsheet import screen: parsing delimited text into raw rows,
// normalizing rows into one of the two persisted item shapes, flagging
// duplicates against the existing corpus, and merging accepted items into a
// target category snapshot. Nothing in this package performs I/O.
package importer

import (
	"fmt"
	"strings"
)

// RawRow maps a column header to that row's value. The header set is driven
// entirely by the file's first line; rows are discarded after normalization.
type RawRow map[string]string

// Parse turns CSV text into a sequence of raw rows.
//
// The first non-empty line is the header row: split on commas, with double
// quotes stripped and fields trimmed. Each following non-empty line is split
// honoring double-quote-enclosed commas, then every field is quote-stripped
// and trimmed. A data row is kept only when its field count matches the
// header count; mismatched rows are dropped silently.
func Parse(text string) ([]RawRow, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	var headers []string
	for _, h := range strings.Split(lines[0], ",") {
		headers = append(headers, cleanField(h))
	}

	var rows []RawRow
	for _, line := range lines[1:] {
		values := splitQuoted(line)
		if len(values) != len(headers) {
			continue
		}
		row := make(RawRow, len(headers))
		for i, h := range headers {
			row[h] = cleanField(values[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitQuoted splits a line on commas, treating a comma inside a
// double-quoted run as part of the field. A quote character toggles the
// in-quotes state and is kept in the field for cleanField to strip.
func splitQuoted(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
