package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timestamp returns the current time at the second precision of the
// stored TEXT columns, so callers see the value a later read returns.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// formatTime renders t for a TEXT timestamp column.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime reads a TEXT timestamp column written by formatTime.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET for positive values. SQLite needs
// a LIMIT before OFFSET, so an offset alone is paired with LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
