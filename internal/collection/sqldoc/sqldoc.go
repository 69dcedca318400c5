// Package sqldoc implements collection storage over a single documents table,
// shared by the SQLite and Postgres providers.
package sqldoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/migration"
)

// Table runs collection operations against the documents table.
type Table struct {
	db      *sql.DB
	dialect migration.Dialect
	now     func() time.Time
}

func New(db *sql.DB, dialect migration.Dialect) *Table {
	return &Table{db: db, dialect: dialect, now: time.Now}
}

// rebind rewrites ? placeholders to $n for Postgres.
func (t *Table) rebind(query string) string {
	if t.dialect != migration.Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (t *Table) ListAll(ctx context.Context, name string, filter collection.Filter, opts collection.Options) (collection.Result, error) {
	if err := collection.ValidateName(name); err != nil {
		return collection.Result{}, err
	}

	rows, err := t.db.QueryContext(ctx, t.rebind(
		"SELECT id, data, created_at, updated_at FROM documents WHERE collection = ? ORDER BY seq"), name)
	if err != nil {
		return collection.Result{}, fmt.Errorf("list %s: %w", name, err)
	}
	defer rows.Close()

	var docs []collection.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return collection.Result{}, fmt.Errorf("list %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return collection.Result{}, fmt.Errorf("list %s: %w", name, err)
	}

	return collection.Collect(docs, filter, opts), nil
}

func (t *Table) Create(ctx context.Context, name string, doc collection.Document) (collection.Document, error) {
	if err := collection.ValidateName(name); err != nil {
		return nil, err
	}
	id := doc.ID()
	if id == "" {
		return nil, collection.ErrMissingID
	}

	data, err := json.Marshal(doc.Body())
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	now := t.now().UTC()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := t.exists(ctx, tx, name, id)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	if exists {
		return nil, fmt.Errorf("%s %q: %w", name, id, collection.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx, t.rebind(
		"INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
		name, id, string(data), t.timeArg(now), t.timeArg(now)); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s %q: %w", name, id, collection.ErrConflict)
		}
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}

	return doc.Body().Stamp(id, now, now), nil
}

func (t *Table) Update(ctx context.Context, name string, partial collection.Document) (collection.Document, error) {
	if err := collection.ValidateName(name); err != nil {
		return nil, err
	}
	id := partial.ID()
	if id == "" {
		return nil, collection.ErrMissingID
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, t.rebind(
		"SELECT id, data, created_at, updated_at FROM documents WHERE collection = ? AND id = ?"), name, id)
	current, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %q: %w", name, id, collection.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}

	merged := current.Merge(partial)
	data, err := json.Marshal(merged.Body())
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}
	now := t.now().UTC()

	if _, err := tx.ExecContext(ctx, t.rebind(
		"UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND id = ?"),
		string(data), t.timeArg(now), name, id); err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}

	merged[collection.FieldUpdatedAt] = now.Format(time.RFC3339Nano)
	return merged, nil
}

func (t *Table) Delete(ctx context.Context, name string, id string) error {
	if err := collection.ValidateName(name); err != nil {
		return err
	}

	res, err := t.db.ExecContext(ctx, t.rebind("DELETE FROM documents WHERE collection = ? AND id = ?"), name, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", name, id, collection.ErrNotFound)
	}
	return nil
}

// Count returns the number of documents per collection, for diagnostics.
func (t *Table) Count(ctx context.Context) (map[string]int, error) {
	rows, err := t.db.QueryContext(ctx, "SELECT collection, COUNT(*) FROM documents GROUP BY collection")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

func (t *Table) exists(ctx context.Context, tx *sql.Tx, name, id string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx, t.rebind(
		"SELECT COUNT(*) FROM documents WHERE collection = ? AND id = ?"), name, id).Scan(&n)
	return n > 0, err
}

// timeArg formats timestamps for the column type of each backend.
func (t *Table) timeArg(ts time.Time) any {
	if t.dialect == migration.Postgres {
		return ts
	}
	return ts.Format(time.RFC3339Nano)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (collection.Document, error) {
	var (
		id               string
		data             []byte
		created, updated any
	)
	if err := row.Scan(&id, &data, &created, &updated); err != nil {
		return nil, err
	}

	doc := collection.Document{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode document %q: %w", id, err)
		}
	}

	createdAt, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(updated)
	if err != nil {
		return nil, err
	}
	return doc.Stamp(id, createdAt, updatedAt), nil
}

func parseTime(v any) (time.Time, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		return time.Parse(time.RFC3339Nano, tv)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(tv))
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
