package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// errNoUpdatableFields signals that a partial update carried no column the
// table accepts. Stores fall back to returning the current row.
var errNoUpdatableFields = errors.New("no updatable fields")

// buildUpdate assembles a partial UPDATE statement from the changed fields.
// Only columns in allowed are applied, in allowed's order so the statement is
// deterministic; anything else in fields is ignored. updated_at is always
// touched and the full row is returned via RETURNING so the caller can hand
// back the post-update record.
func buildUpdate(table, returning string, allowed []string, fields map[string]any, id uuid.UUID) (string, []any, error) {
	var (
		sets []string
		args []any
	)
	for _, col := range allowed {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, errNoUpdatableFields
	}

	args = append(args, id)
	sql := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning,
	)
	return sql, args, nil
}
