// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog archives decoded results in a SQLite database so decoded
// runs can be queried later without re-reading program output. The decode
// engine itself never touches the catalog; persistence is strictly a CLI
// concern layered on top.
// Implements: prd004-catalog; docs/ARCHITECTURE § Result Catalog.
package catalog

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/qcdecode/pkg/types"
)

const dbFile = "qcdecode.db"

// Catalog manages the result archive database.
type Catalog struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalog database at dir/qcdecode.db, creating
// the schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Catalog, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	c := &Catalog{db: db, maxResults: maxResults}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			program TEXT NOT NULL,
			calctype TEXT NOT NULL,
			archived_at TEXT NOT NULL,
			result_yaml TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_program ON results(program)`,
		`CREATE INDEX IF NOT EXISTS idx_results_calctype ON results(calctype)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record is one archived result.
type Record struct {
	ID         string         `json:"id" yaml:"id"`
	Program    types.Program  `json:"program" yaml:"program"`
	CalcType   types.CalcType `json:"calctype" yaml:"calctype"`
	ArchivedAt time.Time      `json:"archived_at" yaml:"archived_at"`
	Result     *types.Result  `json:"result" yaml:"result"`
}

// Put archives a decoded result and returns its id. The id is
// deterministic over the result's content, so archiving the same decode
// twice is idempotent.
func (c *Catalog) Put(res *types.Result) (string, error) {
	data, err := yaml.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	id := stableID(res.Provenance.Program, res.CalcType, data)

	_, err = c.db.Exec(
		`INSERT OR IGNORE INTO results (id, program, calctype, archived_at, result_yaml)
		 VALUES (?, ?, ?, ?, ?)`,
		id, string(res.Provenance.Program), string(res.CalcType),
		time.Now().UTC().Format(time.RFC3339Nano), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("inserting result: %w", err)
	}
	return id, nil
}

// Get returns one archived result by id.
func (c *Catalog) Get(id string) (*Record, error) {
	row := c.db.QueryRow(
		`SELECT id, program, calctype, archived_at, result_yaml FROM results WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("result %s not found", id)
	}
	return rec, err
}

// QueryOptions filters a List call. Zero values match everything.
type QueryOptions struct {
	Program  types.Program
	CalcType types.CalcType
	Limit    int
}

// List returns archived results matching the options, most recent first.
func (c *Catalog) List(opts QueryOptions) ([]*Record, error) {
	q := `SELECT id, program, calctype, archived_at, result_yaml FROM results WHERE 1=1`
	var args []any
	if opts.Program != "" {
		q += ` AND program = ?`
		args = append(args, string(opts.Program))
	}
	if opts.CalcType != "" {
		q += ` AND calctype = ?`
		args = append(args, string(opts.CalcType))
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = c.maxResults
	}
	q += ` ORDER BY archived_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := c.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var rec Record
	var program, calctype, archivedAt, resultYAML string
	if err := s.Scan(&rec.ID, &program, &calctype, &archivedAt, &resultYAML); err != nil {
		return nil, err
	}

	rec.Program = types.Program(program)
	rec.CalcType = types.CalcType(calctype)

	t, err := time.Parse(time.RFC3339Nano, archivedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing archived_at: %w", err)
	}
	rec.ArchivedAt = t

	var res types.Result
	if err := yaml.Unmarshal([]byte(resultYAML), &res); err != nil {
		return nil, fmt.Errorf("unmarshaling result yaml: %w", err)
	}
	rec.Result = &res
	return &rec, nil
}

// stableID generates a deterministic id from the program, calctype, and
// serialized result: the first 12 hex characters of their SHA-256.
func stableID(p types.Program, ct types.CalcType, resultYAML []byte) string {
	h := sha256.New()
	h.Write([]byte(p))
	h.Write([]byte(ct))
	h.Write(resultYAML)
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
