package corpus

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/fenwick-search/doccluster/cluster"
)

//go:embed migration.sql
var migrationSQL string

// SQLiteCorpus is a DocumentSource backed by a SQLite database of
// documents(id, text) rows. Documents are read once, in ascending id
// order, and tokenized up front: ensure the directory exists, open the
// connection, run the embedded migration, and wrap every failure with
// fmt.Errorf("...: %w", err).
type SQLiteCorpus struct {
	docs []cluster.Document
	pos  int
}

// NewSQLiteCorpus opens (creating if necessary) the SQLite database at
// path, applies the documents-table migration, and loads every row.
func NewSQLiteCorpus(path string) (*SQLiteCorpus, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("corpus: failed to create directory for %s: %w", path, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to open database %s: %w", path, err)
	}
	defer conn.Close()

	// SQLite works best with a single connection serializing access.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec(migrationSQL); err != nil {
		return nil, fmt.Errorf("corpus: failed to run migration: %w", err)
	}

	docs, err := loadDocuments(conn)
	if err != nil {
		return nil, err
	}

	return &SQLiteCorpus{docs: docs}, nil
}

func loadDocuments(conn *sql.DB) ([]cluster.Document, error) {
	rows, err := conn.Query("SELECT id, text FROM documents ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []cluster.Document
	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("corpus: failed to scan document row: %w", err)
		}
		docs = append(docs, cluster.NewDocument(fmt.Sprintf("%d", id), Tokenize(text)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("corpus: error iterating document rows: %w", err)
	}
	return docs, nil
}

// InsertDocuments opens (creating if necessary) the SQLite database at
// path, applies the migration, and inserts each RawDocument's text as a
// new row. It exists to seed a corpus file for tests and CLI demos.
func InsertDocuments(path string, raw []RawDocument) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("corpus: failed to create directory for %s: %w", path, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("corpus: failed to open database %s: %w", path, err)
	}
	defer conn.Close()

	if _, err := conn.Exec(migrationSQL); err != nil {
		return fmt.Errorf("corpus: failed to run migration: %w", err)
	}

	for _, r := range raw {
		if _, err := conn.Exec("INSERT INTO documents (text) VALUES (?)", r.Text); err != nil {
			return fmt.Errorf("corpus: failed to insert document: %w", err)
		}
	}
	return nil
}

var _ cluster.DocumentSource = (*SQLiteCorpus)(nil)

// Next returns the next document. Precondition: !AtEnd().
func (s *SQLiteCorpus) Next() (cluster.Document, error) {
	if s.AtEnd() {
		return cluster.Document{}, fmt.Errorf("corpus: Next called on an exhausted SQLiteCorpus")
	}
	d := s.docs[s.pos]
	s.pos++
	return d, nil
}

// AtEnd reports whether every document has been produced.
func (s *SQLiteCorpus) AtEnd() bool { return s.pos >= len(s.docs) }

// Size returns the total number of documents in the corpus.
func (s *SQLiteCorpus) Size() int { return len(s.docs) }
