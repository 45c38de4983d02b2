package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeCSVField(t *testing.T) {
	assert.Equal(t, "plain", EscapeCSVField("plain"))
	assert.Equal(t, `"a,b"`, EscapeCSVField("a,b"))
	assert.Equal(t, `"say ""hi"""`, EscapeCSVField(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", EscapeCSVField("line\nbreak"))
	assert.Equal(t, "", EscapeCSVField(""))
}

func TestBuildCSV_LineCount(t *testing.T) {
	rows := [][]string{
		{"Date", "Hours", "Description"},
		{"2026-08-24", "8", "built the approval endpoint"},
		{"2026-08-25", "6", "fixed csv, again"},
	}
	out := BuildCSV(rows)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3, "header plus one line per entry")
	assert.Equal(t, "Date,Hours,Description", lines[0])
	assert.Equal(t, `2026-08-25,6,"fixed csv, again"`, lines[2])
}
