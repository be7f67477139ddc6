package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const faqColumns = "id, question, answer, category, sort_order, is_active, created_at, updated_at"

// faqRepository implements the FAQRepository interface using PostgreSQL.
type faqRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFAQRepository creates a new PostgreSQL-backed FAQ repository.
func NewFAQRepository(pool *pgxpool.Pool, logger zerolog.Logger) FAQRepository {
	return &faqRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "faq").Logger(),
	}
}

func scanFAQ(row pgx.Row) (*model.FAQ, error) {
	var f model.FAQ
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List retrieves FAQs matching the filter, ordered by sort_order ascending
// with created_at descending as tiebreak.
func (r *faqRepository) List(ctx context.Context, filter model.FAQFilter) ([]model.FAQ, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	} else if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, "is_active = $"+strconv.Itoa(len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + faqColumns + " FROM faqs"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query faqs")
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan faq row")
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, *f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating faq rows")
		return nil, fmt.Errorf("error iterating faqs: %w", err)
	}

	return faqs, nil
}

// GetByID retrieves a FAQ by ID.
func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	f, err := scanFAQ(r.pool.QueryRow(ctx, "SELECT "+faqColumns+" FROM faqs WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("faq_id", id.String()).Msg("faq not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to query faq")
		return nil, fmt.Errorf("failed to query faq: %w", err)
	}
	return f, nil
}

// Create inserts a new FAQ.
func (r *faqRepository) Create(ctx context.Context, f *model.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("faq_id", f.ID.String()).Msg("failed to create faq")
		return fmt.Errorf("failed to create faq: %w", err)
	}

	r.logger.Debug().Str("faq_id", f.ID.String()).Msg("faq created")

	return nil
}

// Update overwrites an existing FAQ.
func (r *faqRepository) Update(ctx context.Context, f *model.FAQ) (bool, error) {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, sort_order = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, f.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("faq_id", f.ID.String()).Msg("failed to update faq")
		return false, fmt.Errorf("failed to update faq: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a FAQ.
func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to delete faq")
		return false, fmt.Errorf("failed to delete faq: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Categories lists the distinct categories, optionally restricted to active FAQs.
func (r *faqRepository) Categories(ctx context.Context, activeOnly bool) ([]string, error) {
	query := "SELECT DISTINCT category FROM faqs"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY category"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query faq categories")
		return nil, fmt.Errorf("failed to query faq categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan faq category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq categories: %w", err)
	}

	return categories, nil
}
