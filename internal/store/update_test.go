package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdate(t *testing.T) {
	id := uuid.New()

	sql, args, err := buildUpdate(
		"items", "id, name",
		[]string{"name", "description", "status"},
		map[string]any{"status": "inactive", "name": "Widget"},
		id,
	)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE items SET name = $1, status = $2, updated_at = NOW() WHERE id = $3 RETURNING id, name", sql)
	assert.Equal(t, []any{"Widget", "inactive", id}, args)
}

func TestBuildUpdate_IgnoresUnknownColumns(t *testing.T) {
	id := uuid.New()

	sql, args, err := buildUpdate(
		"items", "id",
		[]string{"name"},
		map[string]any{"name": "Widget", "id": uuid.New(), "bogus": true},
		id,
	)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE items SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING id", sql)
	assert.Equal(t, []any{"Widget", id}, args)
}

func TestBuildUpdate_NoFields(t *testing.T) {
	_, _, err := buildUpdate("items", "id", []string{"name"}, map[string]any{"bogus": 1}, uuid.New())
	assert.ErrorIs(t, err, errNoUpdatableFields)
}
