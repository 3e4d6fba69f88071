package dynwhere_test

import (
	"database/sql"
	"testing"

	"github.com/KarpelesLab/dynwhere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// each connection gets its own in-memory database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE people (name TEXT, age INTEGER, height TEXT, deleted INTEGER)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO people (name, age, height, deleted) VALUES
		('Jacob', 20, '5ft', NULL),
		('Kevan', 55, '4ft', 1),
		('Leia', 30, '6ft', NULL),
		('Luke', 60, '6ft', NULL)`)
	require.NoError(t, err)

	return db
}

func queryNames(t *testing.T, db *sql.DB, query string, args ...any) []string {
	rows, err := db.Query(query, args...)
	require.NoError(t, err, query)
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		res = append(res, name)
	}
	require.NoError(t, rows.Err())
	return res
}

func TestSQLiteApply(t *testing.T) {
	db := openTestDB(t)

	b := dynwhere.New().
		And("age", dynwhere.GreaterThanOrEqual, 50).
		And("height", dynwhere.In, []string{"4ft", "6ft", "7ft"}, "7ft").
		And("deleted", dynwhere.IsNull, true).
		And("name", dynwhere.Like, nil)

	q, err := b.Apply(dynwhere.EngineSQLite, dynwhere.Q("SELECT name FROM people"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Luke"}, queryNames(t, db, q.Query, q.Args...))

	b.Clear().And("name", dynwhere.Equals, "Jacob").Or("age", dynwhere.LessThan, 35)
	q, err = b.Apply(dynwhere.EngineSQLite, dynwhere.Q("SELECT name FROM people"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Jacob", "Leia"}, queryNames(t, db, q.Query, q.Args...))

	q, err = b.Apply(dynwhere.EngineSQLite, dynwhere.Q("SELECT name FROM people WHERE height = ?", "6ft"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Leia"}, queryNames(t, db, q.Query, q.Args...))
}

func TestSQLitePlaceholders(t *testing.T) {
	db := openTestDB(t)

	b := dynwhere.New().And("name", dynwhere.Like, "L%").And("age", dynwhere.GreaterThan, 0)

	query := "SELECT name FROM people" + b.RenderPlaceholders(true, "")
	assert.Equal(t, "SELECT name FROM people WHERE name LIKE (?) AND age > (?)", query)
	assert.ElementsMatch(t, []string{"Leia", "Luke"}, queryNames(t, db, query, b.Values()...))
}
