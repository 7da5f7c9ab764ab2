package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// resultRepo implements ResultRepo on the interview_results table.
type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) SaveResults(ctx context.Context, rows []ResultRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO interview_results
			(session_id, timestamp, mode, round_name, question, answer, score, feedback, suggested_answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		ts := row.Timestamp.UTC()
		if row.Timestamp.IsZero() {
			ts = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx, row.SessionID, ts, row.Mode, row.RoundName,
			row.Question, row.Answer, row.Score, row.Feedback, row.SuggestedAnswer); err != nil {
			return fmt.Errorf("insert result row: %w", err)
		}
	}

	return tx.Commit()
}

func (r *resultRepo) ListSessions(ctx context.Context, limit int) ([]SessionSummaryRow, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, MIN(timestamp), mode, COUNT(*), AVG(score)
		FROM interview_results
		GROUP BY session_id
		ORDER BY MIN(timestamp) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRow
	for rows.Next() {
		var s SessionSummaryRow
		if err := rows.Scan(&s.SessionID, &s.Timestamp, &s.Mode, &s.Questions, &s.AvgScore); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *resultRepo) SessionResults(ctx context.Context, sessionID string) ([]ResultRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, timestamp, mode, round_name, question, answer,
		       score, feedback, suggested_answer
		FROM interview_results
		WHERE session_id = ?
		ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session results: %w", err)
	}
	defer rows.Close()

	var out []ResultRow
	for rows.Next() {
		var row ResultRow
		if err := rows.Scan(&row.SessionID, &row.Timestamp, &row.Mode, &row.RoundName,
			&row.Question, &row.Answer, &row.Score, &row.Feedback, &row.SuggestedAnswer); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
