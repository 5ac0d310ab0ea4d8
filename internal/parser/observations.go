package parser

import (
	"strings"

	"github.com/studiowebux/buoycli/internal/types"
)

// commentPrefix marks the header and unit lines in the observations feed.
const commentPrefix = "#"

// ParseObservations converts the latest-observations plaintext body into
// rows. Comment lines are dropped, every other line is tokenized on
// whitespace. Blank lines produce no row. Tokenization cannot fail, so
// there is no error to return.
func ParseObservations(body string) []types.Row {
	lines := strings.Split(body, "\n")

	rows := make([]types.Row, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, types.Row(fields))
	}

	return rows
}
