package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

const processedTable = "processed_articles"

const schema = `CREATE TABLE IF NOT EXISTS processed_articles (
    article_id   TEXT PRIMARY KEY,
    url          TEXT NOT NULL,
    title        TEXT NOT NULL DEFAULT '',
    outcome      TEXT NOT NULL,
    reason       TEXT NOT NULL DEFAULT '',
    processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresLedger remembers processed articles in Postgres. A ledger without
// a database reports nothing as processed and discards marks.
type PostgresLedger struct {
	db *sql.DB
}

var _ ports.ProcessedLedger = (*PostgresLedger)(nil)

// NewPostgresLedger wires a sql.DB implementation.
func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// EnsureSchema creates the ledger table when missing.
func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	if l.db == nil {
		return nil
	}
	if _, err := l.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// AlreadyProcessed returns a map with IDs that already exist in storage.
func (l *PostgresLedger) AlreadyProcessed(ctx context.Context, ids []string) (map[string]bool, error) {
	if l.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := selectProcessed(ids)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query processed: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// MarkProcessed upserts the outcome of one article.
func (l *PostgresLedger) MarkProcessed(ctx context.Context, record domain.ProcessedRecord) error {
	if l.db == nil {
		return nil
	}

	query, args, err := upsertProcessed(record)
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert processed: %w", err)
	}
	return nil
}

func selectProcessed(ids []string) (string, []any, error) {
	return psql.Select("article_id").
		From(processedTable).
		Where("article_id = ANY(?)", pq.Array(ids)).
		ToSql()
}

func upsertProcessed(record domain.ProcessedRecord) (string, []any, error) {
	return psql.Insert(processedTable).
		Columns("article_id", "url", "title", "outcome", "reason", "processed_at").
		Values(record.ArticleID, record.URL, record.Title, string(record.Outcome), record.Reason, record.ProcessedAt).
		Suffix(`ON CONFLICT (article_id) DO UPDATE
              SET url = EXCLUDED.url,
                  title = EXCLUDED.title,
                  outcome = EXCLUDED.outcome,
                  reason = EXCLUDED.reason,
                  processed_at = EXCLUDED.processed_at`).
		ToSql()
}
