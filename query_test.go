package dynwhere_test

import (
	"errors"
	"testing"

	"github.com/KarpelesLab/dynwhere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	b := dynwhere.New().And("name", dynwhere.Equals, "Jacob")

	q, err := b.Apply(dynwhere.EngineMySQL, dynwhere.Q("SELECT * FROM people"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM people WHERE name = ?`, q.Query)
	assert.Equal(t, []any{"Jacob"}, q.Args)

	q, err = b.Apply(dynwhere.EngineMySQL, dynwhere.Q("SELECT * FROM people where "))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM people where name = ?`, q.Query)

	// "somewhere" is not a keyword
	q, err = b.Apply(dynwhere.EngineMySQL, dynwhere.Q("SELECT * FROM somewhere"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM somewhere WHERE name = ?`, q.Query)

	b.Or("name", dynwhere.Equals, "Kevan")
	q, err = b.Apply(dynwhere.EnginePostgreSQL, dynwhere.Q("SELECT * FROM people WHERE deleted = $1", false))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM people WHERE deleted = $1 AND (name = $2 OR name = $3)`, q.Query)
	assert.Equal(t, []any{false, "Jacob", "Kevan"}, q.Args)
}

func TestApplyEmpty(t *testing.T) {
	base := dynwhere.Q("SELECT * FROM people WHERE id = ?", 42)

	q, err := dynwhere.New().And("name", dynwhere.Equals, nil).Apply(dynwhere.EngineMySQL, base)
	require.NoError(t, err)
	assert.Equal(t, base.Query, q.Query)
	assert.Equal(t, base.Args, q.Args)
}

func TestApplyErrors(t *testing.T) {
	b := dynwhere.New().And("name", dynwhere.Equals, "Jacob")

	base := "SELECT * FROM a WHERE x IN (SELECT y FROM b WHERE z = 1)"
	_, err := b.Apply(dynwhere.EngineMySQL, dynwhere.Q(base))
	require.Error(t, err)
	assert.ErrorIs(t, err, dynwhere.ErrTooManyWhere)

	var e *dynwhere.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, base, e.Query)

	_, err = b.Apply(dynwhere.EngineUnknown, dynwhere.Q("SELECT 1"))
	assert.ErrorIs(t, err, dynwhere.ErrUnknownEngine)

	_, err = b.Apply(dynwhere.EngineMySQL, nil)
	assert.ErrorIs(t, err, dynwhere.ErrNilQuery)
	assert.True(t, errors.As(err, &e))
}
