package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("booking_seasons").
		Where(squirrel.Eq{"housing_id": int64(7)}).
		Where(squirrel.NotEq{"id": int64(3)}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM booking_seasons WHERE housing_id = $1 AND id <> $2", query)
	assert.Equal(t, []interface{}{int64(7), int64(3)}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("housings").Columns("name").Values("villa").Suffix("RETURNING id").ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO housings (name) VALUES ($1) RETURNING id", query)
}
