package frostql

import (
	"context"
	"database/sql"
	"strings"
)

// currentNamespaceQuery resolves the fully-qualified current
// database/schema context of the connection.
const currentNamespaceQuery = "SELECT current_database() || '.' || current_schema()"

// Executor is the minimal query surface frostql needs from a warehouse
// connection. *sql.DB satisfies it.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Session is the client-side handle to a remote warehouse connection. It
// owns the executor, caches the current namespace, and constructs lazy
// plans. It performs remote calls only when connecting, switching
// namespaces, or when a DataFrame triggering action runs.
type Session struct {
	exec      Executor
	namespace string
}

// SessionOption configures a Session during Connect.
type SessionOption func(*Session)

// WithNamespace sets the fully-qualified current namespace explicitly,
// skipping the resolution query during Connect. Useful when the connection
// cannot answer the namespace query or when the caller already knows the
// context.
func WithNamespace(namespace string) SessionOption {
	return func(s *Session) {
		s.namespace = namespace
	}
}

// Connect wraps an existing warehouse connection in a Session. Unless
// WithNamespace is given, the current database/schema context is resolved
// once here so that later builder calls stay synchronous and never block.
//
// Example:
//
//	db, err := sql.Open("warehouse", dsn)
//	if err != nil {
//	    return err
//	}
//	session, err := frostql.Connect(ctx, db)
func Connect(ctx context.Context, exec Executor, opts ...SessionOption) (*Session, error) {
	if exec == nil {
		return nil, ErrNilExecutor
	}

	session := &Session{exec: exec}
	for _, opt := range opts {
		opt(session)
	}

	if session.namespace == "" {
		namespace, err := session.resolveNamespace(ctx)
		if err != nil {
			return nil, err
		}
		session.namespace = namespace
	}
	return session, nil
}

// resolveNamespace queries the connection for its current context.
func (s *Session) resolveNamespace(ctx context.Context) (string, error) {
	rows, err := s.exec.QueryContext(ctx, currentNamespaceQuery)
	if err != nil {
		return "", err
	}
	defer func() { _ = rows.Close() }()

	var namespace string
	if rows.Next() {
		if err := rows.Scan(&namespace); err != nil {
			return "", err
		}
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return namespace, nil
}

// Read returns a new Reader for configuring staged file reads.
func (s *Session) Read() *Reader {
	return newReader(s)
}

// CurrentNamespace returns the cached fully-qualified database/schema
// context.
func (s *Session) CurrentNamespace() string {
	return s.namespace
}

// Use switches the session to another namespace. The statement runs on the
// remote connection and the cached namespace is refreshed on success.
func (s *Session) Use(ctx context.Context, namespace string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}
	if _, err := s.exec.ExecContext(ctx, "USE SCHEMA "+namespace); err != nil {
		return err
	}
	s.namespace = namespace
	return nil
}

// Table returns a DataFrame over an existing table. An unqualified name is
// resolved against the current namespace; a qualified name passes through
// unchanged. No remote call is made until a triggering action runs.
func (s *Session) Table(name string) (*DataFrame, error) {
	if name == "" {
		return nil, ErrEmptyPath
	}
	return &DataFrame{
		session: s,
		plan: &plan{
			kind:      planTableRef,
			table:     s.qualify(name),
			namespace: s.namespace,
		},
	}, nil
}

// SQL returns a DataFrame wrapping caller-supplied query text. The text is
// embedded verbatim and executed only when a triggering action runs.
func (s *Session) SQL(query string) *DataFrame {
	return &DataFrame{
		session: s,
		plan: &plan{
			kind:      planRaw,
			text:      query,
			namespace: s.namespace,
		},
	}
}

// readFile constructs the lazy file-read plan for the Reader. The options
// map is the Reader's frozen snapshot; the schema is already a copy.
func (s *Session) readFile(path string, format FileFormat, options map[string]string, schema Schema) (*DataFrame, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &DataFrame{
		session: s,
		plan: &plan{
			kind:      planFileRead,
			path:      path,
			format:    format,
			options:   options,
			namespace: s.namespace,
			schema:    schema,
		},
	}, nil
}

// qualify prefixes an unqualified object name with the current namespace.
func (s *Session) qualify(name string) string {
	if s.namespace == "" || strings.Contains(name, ".") {
		return name
	}
	return s.namespace + "." + name
}
