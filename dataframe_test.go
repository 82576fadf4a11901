package frostql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUsers creates and fills a small table in the test database.
func seedUsers(t *testing.T, session *Session) {
	t.Helper()
	ctx := context.Background()
	_, err := session.exec.ExecContext(ctx, "CREATE TABLE users (name TEXT, age INTEGER)")
	require.NoError(t, err)
	_, err = session.exec.ExecContext(ctx, "INSERT INTO users VALUES ('Alice', 30), ('Bob', 25), ('Carol', 41)")
	require.NoError(t, err)
}

func TestDataFrame_Collect(t *testing.T) {
	t.Parallel()

	session := newSQLiteSession(t)
	seedUsers(t, session)

	df, err := session.Table("users")
	require.NoError(t, err)

	rows, err := df.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alice", rows[0][0])
	assert.Equal(t, int64(30), rows[0][1])
}

func TestDataFrame_Count(t *testing.T) {
	t.Parallel()

	session := newSQLiteSession(t)
	seedUsers(t, session)

	df, err := session.Table("users")
	require.NoError(t, err)

	count, err := df.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDataFrame_Limit(t *testing.T) {
	t.Parallel()

	session := newSQLiteSession(t)
	seedUsers(t, session)

	df, err := session.Table("users")
	require.NoError(t, err)

	limited := df.Limit(2)
	rows, err := limited.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// The original handle is untouched.
	count, err := df.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDataFrame_Lazy(t *testing.T) {
	t.Parallel()

	t.Run("no remote call until a triggering action", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		df := session.SQL("SELECT * FROM anywhere").Limit(5)
		_ = df.SQL()
		_ = df.Schema()
		_ = df.Namespace()
		assert.Zero(t, exec.remoteCalls(), "handle construction and inspection should stay local")
	})

	t.Run("remote errors propagate unchanged", func(t *testing.T) {
		t.Parallel()
		session, _ := newRecordingSession(t)

		df := session.SQL("SELECT 1")
		_, err := df.Collect(context.Background())
		assert.ErrorIs(t, err, errFakeQuery)

		_, err = df.Count(context.Background())
		assert.ErrorIs(t, err, errFakeQuery)
	})
}

func TestDataFrame_RawSQL(t *testing.T) {
	t.Parallel()

	session := newSQLiteSession(t)
	seedUsers(t, session)

	df := session.SQL("SELECT name FROM users WHERE age > 28 ORDER BY name")
	rows, err := df.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0][0])
	assert.Equal(t, "Carol", rows[1][0])
}
