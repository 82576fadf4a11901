package frostql

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,x\n"), 0o600))
	return path
}

func TestSession_PutFile(t *testing.T) {
	t.Parallel()

	t.Run("compresses with gzip by default", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)
		source := writeTempCSV(t, "data.csv")

		require.NoError(t, session.PutFile(context.Background(), source, "@mystage/data"))
		require.Len(t, exec.execs, 1)

		stmt := exec.execs[0]
		assert.Contains(t, stmt, "PUT 'file://")
		assert.Contains(t, stmt, "'@mystage/data'")
		assert.Contains(t, stmt, "AUTO_COMPRESS = false")
		assert.Contains(t, stmt, "SOURCE_COMPRESSION = GZIP")
		assert.Contains(t, stmt, "PARALLEL = 4")
		assert.NotContains(t, stmt, "OVERWRITE")
	})

	t.Run("honors the compression choice", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)
		source := writeTempCSV(t, "data.csv")

		require.NoError(t, session.PutFile(context.Background(), source, "@mystage/data",
			WithCompression(CompressionZSTD),
			WithOverwrite(true),
			WithParallel(8)))
		require.Len(t, exec.execs, 1)

		stmt := exec.execs[0]
		assert.Contains(t, stmt, "SOURCE_COMPRESSION = ZSTD")
		assert.Contains(t, stmt, "OVERWRITE = true")
		assert.Contains(t, stmt, "PARALLEL = 8")
	})

	t.Run("already-compressed files upload as-is", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)
		path := filepath.Join(t.TempDir(), "data.csv.gz")
		require.NoError(t, os.WriteFile(path, []byte("not really gzip"), 0o600))

		require.NoError(t, session.PutFile(context.Background(), path, "@mystage/data"))
		require.Len(t, exec.execs, 1)

		stmt := exec.execs[0]
		assert.Contains(t, stmt, "data.csv.gz", "the original file should upload untouched")
		assert.Contains(t, stmt, "SOURCE_COMPRESSION = GZIP")
	})

	t.Run("auto-compress disabled uploads the raw file", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)
		source := writeTempCSV(t, "data.csv")

		require.NoError(t, session.PutFile(context.Background(), source, "@mystage/data",
			WithAutoCompress(false)))
		require.Len(t, exec.execs, 1)

		stmt := exec.execs[0]
		assert.Contains(t, stmt, "data.csv'", "the original file should upload untouched")
		assert.Contains(t, stmt, "SOURCE_COMPRESSION = NONE")
	})

	t.Run("empty paths are rejected", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		assert.ErrorIs(t, session.PutFile(context.Background(), "", "@mystage/data"), ErrEmptyPath)
		assert.ErrorIs(t, session.PutFile(context.Background(), "data.csv", ""), ErrEmptyPath)
		assert.Zero(t, exec.remoteCalls())
	})

	t.Run("missing source file", func(t *testing.T) {
		t.Parallel()
		session, exec := newRecordingSession(t)

		err := session.PutFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), "@mystage/data")
		assert.Error(t, err)
		assert.Zero(t, exec.remoteCalls(), "nothing should reach the engine when compression fails")
	})
}

func TestPutStatement(t *testing.T) {
	t.Parallel()

	cfg := defaultPutConfig()
	stmt := putStatement("/tmp/data.csv.gz", "@mystage/data", CompressionGZ, cfg)
	assert.Equal(t,
		"PUT 'file:///tmp/data.csv.gz' '@mystage/data' AUTO_COMPRESS = false SOURCE_COMPRESSION = GZIP PARALLEL = 4",
		stmt)
}
