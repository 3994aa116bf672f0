package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "zakat-chatbot/errors"
)

// ReminderRecord is one saved payment reminder.
type ReminderRecord struct {
	ID          int64
	Name        string
	ICNumber    string
	Phone       string
	ZakatType   string
	ZakatAmount float64
	Year        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderListOptions narrows ListReminders. Zero values mean no filter;
// Search matches name, IC number and phone.
type ReminderListOptions struct {
	Limit     int
	Offset    int
	Search    string
	ZakatType string
}

// ReminderTypeStat is the per-type breakdown inside ReminderStatsResult.
type ReminderTypeStat struct {
	ZakatType string
	Count     int64
	Amount    float64
}

// ReminderStatsResult aggregates reminders for the admin overview.
type ReminderStatsResult struct {
	Total       int64
	TotalAmount float64
	ByType      []ReminderTypeStat
}

func (s *PostgresStore) CreateReminder(ctx context.Context, rec ReminderRecord) (ReminderRecord, error) {
	query := `
		INSERT INTO reminders (name, ic_number, phone, zakat_type, zakat_amount, year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, ic_number, phone, zakat_type, zakat_amount, year, created_at, updated_at
	`

	var out ReminderRecord
	err := s.DB.QueryRowContext(ctx, query,
		rec.Name,
		rec.ICNumber,
		rec.Phone,
		rec.ZakatType,
		rec.ZakatAmount,
		rec.Year,
	).Scan(
		&out.ID,
		&out.Name,
		&out.ICNumber,
		&out.Phone,
		&out.ZakatType,
		&out.ZakatAmount,
		&out.Year,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return ReminderRecord{}, fmt.Errorf("failed to create reminder: %w", err)
	}
	return out, nil
}

// ListReminders returns one page of reminders, newest first, with the total
// row count for the filter.
func (s *PostgresStore) ListReminders(ctx context.Context, opts ReminderListOptions) ([]ReminderRecord, int64, error) {
	pattern := ""
	if opts.Search != "" {
		pattern = "%" + opts.Search + "%"
	}

	countQuery := `
		SELECT COUNT(*)
		FROM reminders
		WHERE ($1 = '' OR name ILIKE $1 OR ic_number ILIKE $1 OR phone ILIKE $1)
		  AND ($2 = '' OR zakat_type = $2)
	`
	var total int64
	if err := s.DB.QueryRowContext(ctx, countQuery, pattern, opts.ZakatType).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reminders: %w", err)
	}

	query := `
		SELECT id, name, ic_number, phone, zakat_type, zakat_amount, year, created_at, updated_at
		FROM reminders
		WHERE ($1 = '' OR name ILIKE $1 OR ic_number ILIKE $1 OR phone ILIKE $1)
		  AND ($2 = '' OR zakat_type = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := s.DB.QueryContext(ctx, query, pattern, opts.ZakatType, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []ReminderRecord
	for rows.Next() {
		var rec ReminderRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.ICNumber,
			&rec.Phone,
			&rec.ZakatType,
			&rec.ZakatAmount,
			&rec.Year,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		reminders = append(reminders, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reminder rows: %w", err)
	}

	return reminders, total, nil
}

func (s *PostgresStore) GetReminder(ctx context.Context, id int64) (ReminderRecord, error) {
	query := `
		SELECT id, name, ic_number, phone, zakat_type, zakat_amount, year, created_at, updated_at
		FROM reminders
		WHERE id = $1
	`

	var rec ReminderRecord
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Name,
		&rec.ICNumber,
		&rec.Phone,
		&rec.ZakatType,
		&rec.ZakatAmount,
		&rec.Year,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReminderRecord{}, fmt.Errorf("reminder %d: %w", id, apperrors.ErrNotFound)
		}
		return ReminderRecord{}, fmt.Errorf("failed to get reminder: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) DeleteReminder(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reminder %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ReminderStats(ctx context.Context) (ReminderStatsResult, error) {
	var stats ReminderStatsResult

	summaryQuery := `SELECT COUNT(*), COALESCE(SUM(zakat_amount), 0) FROM reminders`
	if err := s.DB.QueryRowContext(ctx, summaryQuery).Scan(&stats.Total, &stats.TotalAmount); err != nil {
		return ReminderStatsResult{}, fmt.Errorf("failed to query reminder summary: %w", err)
	}

	typeQuery := `
		SELECT zakat_type, COUNT(*), COALESCE(SUM(zakat_amount), 0)
		FROM reminders
		GROUP BY zakat_type
		ORDER BY zakat_type
	`
	rows, err := s.DB.QueryContext(ctx, typeQuery)
	if err != nil {
		return ReminderStatsResult{}, fmt.Errorf("failed to query reminder types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ts ReminderTypeStat
		if err := rows.Scan(&ts.ZakatType, &ts.Count, &ts.Amount); err != nil {
			return ReminderStatsResult{}, fmt.Errorf("failed to scan type row: %w", err)
		}
		stats.ByType = append(stats.ByType, ts)
	}
	if err := rows.Err(); err != nil {
		return ReminderStatsResult{}, fmt.Errorf("error iterating type rows: %w", err)
	}

	return stats, nil
}
