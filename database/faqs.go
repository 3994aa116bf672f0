package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/nlp"
)

// ListFAQs returns the full corpus ordered by category then question, the
// order the matcher and the public FAQ listing both rely on.
func (s *PostgresStore) ListFAQs(ctx context.Context) ([]nlp.FAQEntry, error) {
	query := `
		SELECT id, question, answer, category
		FROM faqs
		ORDER BY category ASC, question ASC
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var entries []nlp.FAQEntry
	for rows.Next() {
		var entry nlp.FAQEntry
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.Category); err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq rows: %w", err)
	}

	return entries, nil
}

func (s *PostgresStore) GetFAQ(ctx context.Context, id int64) (nlp.FAQEntry, error) {
	query := `SELECT id, question, answer, category FROM faqs WHERE id = $1`

	var entry nlp.FAQEntry
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nlp.FAQEntry{}, fmt.Errorf("faq %d: %w", id, apperrors.ErrNotFound)
		}
		return nlp.FAQEntry{}, fmt.Errorf("failed to get faq: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) CreateFAQ(ctx context.Context, question, answer, category string) (nlp.FAQEntry, error) {
	query := `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING id, question, answer, category
	`

	var entry nlp.FAQEntry
	err := s.DB.QueryRowContext(ctx, query, question, answer, category).
		Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.Category)
	if err != nil {
		return nlp.FAQEntry{}, fmt.Errorf("failed to create faq: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) UpdateFAQ(ctx context.Context, id int64, question, answer, category string) (nlp.FAQEntry, error) {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2, category = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, question, answer, category
	`

	var entry nlp.FAQEntry
	err := s.DB.QueryRowContext(ctx, query, question, answer, category, id).
		Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nlp.FAQEntry{}, fmt.Errorf("faq %d: %w", id, apperrors.ErrNotFound)
		}
		return nlp.FAQEntry{}, fmt.Errorf("failed to update faq: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) DeleteFAQ(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("faq %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) CountFAQs(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}

// SeedFAQs inserts the starter corpus in one transaction. Used at startup
// when the faqs table is empty.
func (s *PostgresStore) SeedFAQs(ctx context.Context, entries []nlp.FAQEntry) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO faqs (question, answer, category) VALUES ($1, $2, $3)`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, entry.Question, entry.Answer, entry.Category); err != nil {
			return fmt.Errorf("failed to seed faq %q: %w", entry.Question, err)
		}
	}

	return tx.Commit()
}
