package utils

import "strings"

// EscapeCSVField wraps a field in quotes when it contains a comma, quote or
// newline, doubling any embedded quotes. The export format is frozen: LF
// line endings, no trailing newline, quoting only when needed.
func EscapeCSVField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// BuildCSV joins rows into a single LF-separated document. Callers pass the
// header as the first row; N data rows produce N+1 lines.
func BuildCSV(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		escaped := make([]string, len(row))
		for i, field := range row {
			escaped[i] = EscapeCSVField(field)
		}
		lines = append(lines, strings.Join(escaped, ","))
	}
	return strings.Join(lines, "\n")
}
