package decoder

import (
	"fmt"

	"github.com/beccau/fix-mode/internal/dictionary"
)

// Format renders one resolved field for the operator. Missing names render
// as empty strings so the raw tag and value stay visible either way.
func Format(f ResolvedField) string {
	return fmt.Sprintf("> %s[%s] = %s[%s]", f.TagName, f.Tag, f.ValueName, f.Value)
}

// FormatMessage formats a resolved message line by line, preserving order.
// Any separator after the message belongs to the caller.
func FormatMessage(fields []ResolvedField) []string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, Format(f))
	}
	return lines
}

// DecodeLine runs the full pipeline on one raw log line. A line with no
// recognized delimiter yields no output.
func DecodeLine(line string, store *dictionary.Store) []string {
	return FormatMessage(Decode(Tokenize(line), store))
}
