package frostql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// errFakeQuery is returned by recordingExecutor so that tests exercising
// error propagation see a recognizable remote failure.
var errFakeQuery = errors.New("remote engine unavailable")

// recordingExecutor records every statement without touching a real
// connection. Queries fail with errFakeQuery; execs succeed.
type recordingExecutor struct {
	queries []string
	execs   []string
}

func (e *recordingExecutor) QueryContext(_ context.Context, query string, _ ...any) (*sql.Rows, error) {
	e.queries = append(e.queries, query)
	return nil, errFakeQuery
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	e.execs = append(e.execs, query)
	return nil, nil
}

// remoteCalls is the total number of statements the collaborator saw.
func (e *recordingExecutor) remoteCalls() int {
	return len(e.queries) + len(e.execs)
}

// newRecordingSession returns a session over a recordingExecutor without
// any connect-time remote call.
func newRecordingSession(t *testing.T) (*Session, *recordingExecutor) {
	t.Helper()
	exec := &recordingExecutor{}
	session, err := Connect(context.Background(), exec, WithNamespace("db.schema"))
	require.NoError(t, err)
	return session, exec
}

// newSQLiteSession returns a session backed by an in-memory SQLite
// database for tests that actually trigger plans.
func newSQLiteSession(t *testing.T) *Session {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	session, err := Connect(context.Background(), db, WithNamespace("main"))
	require.NoError(t, err)
	return session
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("nil executor is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Connect(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilExecutor)
	})

	t.Run("explicit namespace skips the resolution query", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{}
		session, err := Connect(context.Background(), exec, WithNamespace("analytics.public"))
		require.NoError(t, err)
		assert.Equal(t, "analytics.public", session.CurrentNamespace())
		assert.Zero(t, exec.remoteCalls(), "connect with explicit namespace should not query the engine")
	})

	t.Run("namespace resolution failure propagates", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{}
		_, err := Connect(context.Background(), exec)
		assert.ErrorIs(t, err, errFakeQuery, "remote errors should pass through unwrapped")
		assert.Equal(t, []string{currentNamespaceQuery}, exec.queries)
	})
}

func TestSession_Table(t *testing.T) {
	t.Parallel()

	t.Run("unqualified name is resolved against the namespace", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		df, err := session.Table("users")
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM db.schema.users", df.SQL())
		assert.Equal(t, "db.schema", df.Namespace())
		assert.Zero(t, exec.remoteCalls(), "building a table handle should not touch the engine")
	})

	t.Run("qualified name passes through", func(t *testing.T) {
		t.Parallel()
		session, _ := newRecordingSession(t)

		df, err := session.Table("other.schema.users")
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM other.schema.users", df.SQL())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()
		session, _ := newRecordingSession(t)

		_, err := session.Table("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})
}

func TestSession_Use(t *testing.T) {
	t.Parallel()

	t.Run("switches and caches the namespace", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		require.NoError(t, session.Use(context.Background(), "analytics.reporting"))
		assert.Equal(t, []string{"USE SCHEMA analytics.reporting"}, exec.execs)
		assert.Equal(t, "analytics.reporting", session.CurrentNamespace())
	})

	t.Run("empty namespace is rejected locally", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		err := session.Use(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyNamespace)
		assert.Zero(t, exec.remoteCalls())
	})
}

func TestSession_SQL(t *testing.T) {
	t.Parallel()

	session, exec := newRecordingSession(t)
	df := session.SQL("SELECT 1 AS one")
	assert.Equal(t, "SELECT 1 AS one", df.SQL())
	assert.Nil(t, df.Schema(), "raw handles have no client-side schema")
	assert.Zero(t, exec.remoteCalls(), "wrapping raw SQL should not touch the engine")
}
