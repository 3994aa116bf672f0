package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "zakat-chatbot/errors"
)

// ChatLogRecord is one logged exchange between a visitor and the bot.
type ChatLogRecord struct {
	ID              int64
	SessionID       string
	UserMessage     string
	BotReply        string
	MatchedQuestion string
	Confidence      float64
	AnswerSource    string
	CreatedAt       time.Time
}

// ChatLogListOptions filters and paginates the admin log listing. Search
// matches user messages, bot replies, and session IDs.
type ChatLogListOptions struct {
	Limit     int
	Offset    int
	SessionID string
	Search    string
}

// ChatLogStatsResult aggregates the chat_logs table for the admin overview.
type ChatLogStatsResult struct {
	TotalMessages  int64
	UniqueSessions int64
	AvgConfidence  float64
	TodayMessages  int64
	WeekMessages   int64
	MonthMessages  int64
	BySource       map[string]int64
}

func (s *PostgresStore) CreateChatLog(ctx context.Context, rec ChatLogRecord) error {
	query := `
		INSERT INTO chat_logs (session_id, user_message, bot_reply, matched_question, confidence, answer_source)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.DB.ExecContext(ctx, query,
		rec.SessionID,
		rec.UserMessage,
		rec.BotReply,
		rec.MatchedQuestion,
		rec.Confidence,
		rec.AnswerSource,
	)
	if err != nil {
		return fmt.Errorf("failed to create chat log: %w", err)
	}
	return nil
}

// ListChatLogs returns one page of logs, newest first. The second return
// value is the total row count for the filter so callers can paginate.
func (s *PostgresStore) ListChatLogs(ctx context.Context, opts ChatLogListOptions) ([]ChatLogRecord, int64, error) {
	pattern := ""
	if opts.Search != "" {
		pattern = "%" + opts.Search + "%"
	}

	countQuery := `
		SELECT COUNT(*)
		FROM chat_logs
		WHERE ($1 = '' OR session_id = $1)
		  AND ($2 = '' OR user_message ILIKE $2 OR bot_reply ILIKE $2 OR session_id ILIKE $2)
	`
	var total int64
	if err := s.DB.QueryRowContext(ctx, countQuery, opts.SessionID, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count chat logs: %w", err)
	}

	query := `
		SELECT id, session_id, user_message, bot_reply, matched_question, confidence, answer_source, created_at
		FROM chat_logs
		WHERE ($1 = '' OR session_id = $1)
		  AND ($2 = '' OR user_message ILIKE $2 OR bot_reply ILIKE $2 OR session_id ILIKE $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := s.DB.QueryContext(ctx, query, opts.SessionID, pattern, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query chat logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanChatLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// GetSessionHistory returns a session's exchanges in conversation order,
// capped at limit.
func (s *PostgresStore) GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]ChatLogRecord, error) {
	query := `
		SELECT id, session_id, user_message, bot_reply, matched_question, confidence, answer_source, created_at
		FROM chat_logs
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`
	rows, err := s.DB.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query session history: %w", err)
	}
	defer rows.Close()

	return scanChatLogs(rows)
}

func (s *PostgresStore) GetChatLog(ctx context.Context, id int64) (ChatLogRecord, error) {
	query := `
		SELECT id, session_id, user_message, bot_reply, matched_question, confidence, answer_source, created_at
		FROM chat_logs
		WHERE id = $1
	`

	var rec ChatLogRecord
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.UserMessage,
		&rec.BotReply,
		&rec.MatchedQuestion,
		&rec.Confidence,
		&rec.AnswerSource,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChatLogRecord{}, fmt.Errorf("chat log %d: %w", id, apperrors.ErrNotFound)
		}
		return ChatLogRecord{}, fmt.Errorf("failed to get chat log: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) DeleteChatLog(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM chat_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chat log: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("chat log %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteChatLogsBefore removes logs older than the cutoff and reports how
// many rows went away.
func (s *PostgresStore) DeleteChatLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM chat_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old chat logs: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected, nil
}

func (s *PostgresStore) ChatLogStats(ctx context.Context) (ChatLogStatsResult, error) {
	stats := ChatLogStatsResult{BySource: make(map[string]int64)}

	summaryQuery := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT session_id),
			COALESCE(AVG(confidence), 0),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', NOW())),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('week', NOW())),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('month', NOW()))
		FROM chat_logs
	`
	err := s.DB.QueryRowContext(ctx, summaryQuery).Scan(
		&stats.TotalMessages,
		&stats.UniqueSessions,
		&stats.AvgConfidence,
		&stats.TodayMessages,
		&stats.WeekMessages,
		&stats.MonthMessages,
	)
	if err != nil {
		return ChatLogStatsResult{}, fmt.Errorf("failed to query chat log summary: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT answer_source, COUNT(*) FROM chat_logs GROUP BY answer_source`)
	if err != nil {
		return ChatLogStatsResult{}, fmt.Errorf("failed to query chat log sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return ChatLogStatsResult{}, fmt.Errorf("failed to scan source row: %w", err)
		}
		stats.BySource[source] = count
	}
	if err := rows.Err(); err != nil {
		return ChatLogStatsResult{}, fmt.Errorf("error iterating source rows: %w", err)
	}

	return stats, nil
}

func scanChatLogs(rows *sql.Rows) ([]ChatLogRecord, error) {
	var logs []ChatLogRecord
	for rows.Next() {
		var rec ChatLogRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.UserMessage,
			&rec.BotReply,
			&rec.MatchedQuestion,
			&rec.Confidence,
			&rec.AnswerSource,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat log row: %w", err)
		}
		logs = append(logs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat log rows: %w", err)
	}

	return logs, nil
}
