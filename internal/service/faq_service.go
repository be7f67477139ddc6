package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// faqService implements FAQService.
type faqService struct {
	faqRepo repository.FAQRepository
	logger  zerolog.Logger
}

// NewFAQService creates a new FAQ service.
func NewFAQService(faqRepo repository.FAQRepository, logger zerolog.Logger) FAQService {
	return &faqService{
		faqRepo: faqRepo,
		logger:  logger.With().Str("service", "faq").Logger(),
	}
}

// ListAdmin retrieves FAQs for the admin panel, including inactive ones.
func (s *faqService) ListAdmin(ctx context.Context, filter model.FAQFilter) ([]model.FAQ, error) {
	faqs, err := s.faqRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list faqs")
		return nil, fmt.Errorf("failed to get faqs: %w", err)
	}

	return faqs, nil
}

// ListPublic retrieves active FAQs in their storefront representation.
func (s *faqService) ListPublic(ctx context.Context, category string) ([]model.PublicFAQ, error) {
	faqs, err := s.faqRepo.List(ctx, model.FAQFilter{Category: category, ActiveOnly: true})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list public faqs")
		return nil, fmt.Errorf("failed to get faqs: %w", err)
	}

	public := make([]model.PublicFAQ, len(faqs))
	for i := range faqs {
		public[i] = faqs[i].Public()
	}

	return public, nil
}

// GetByID retrieves a FAQ by ID.
func (s *faqService) GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	if faq == nil {
		return nil, model.ErrFAQNotFound
	}

	return faq, nil
}

// Create adds a FAQ. Question and answer are trimmed and required; category
// defaults to General, sort order to 0 and active to true.
func (s *faqService) Create(ctx context.Context, req *model.FAQRequest) (*model.FAQ, error) {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)

	if question == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "Question is required")
	}
	if answer == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "Answer is required")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.DefaultFAQCategory
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	faq := &model.FAQ{
		ID:        uuid.New(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		SortOrder: sortOrder,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.faqRepo.Create(ctx, faq); err != nil {
		s.logger.Error().Err(err).Msg("failed to create faq")
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	s.logger.Info().Str("faq_id", faq.ID.String()).Str("category", faq.Category).Msg("faq created")

	return faq, nil
}

// Update applies a partial FAQ update. Nil fields keep their current value.
func (s *faqService) Update(ctx context.Context, id uuid.UUID, req *model.FAQUpdateRequest) (*model.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	if faq == nil {
		return nil, model.ErrFAQNotFound
	}

	if req.Question != nil {
		question := strings.TrimSpace(*req.Question)
		if question == "" {
			return nil, model.NewDomainError(model.ErrCodeValidation, "Question cannot be empty")
		}
		faq.Question = question
	}
	if req.Answer != nil {
		answer := strings.TrimSpace(*req.Answer)
		if answer == "" {
			return nil, model.NewDomainError(model.ErrCodeValidation, "Answer cannot be empty")
		}
		faq.Answer = answer
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			category = model.DefaultFAQCategory
		}
		faq.Category = category
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	faq.UpdatedAt = time.Now()

	found, err := s.faqRepo.Update(ctx, faq)
	if err != nil {
		s.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to update faq")
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}
	if !found {
		return nil, model.ErrFAQNotFound
	}

	return faq, nil
}

// Delete removes a FAQ.
func (s *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.faqRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to delete faq")
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if !found {
		return model.ErrFAQNotFound
	}

	s.logger.Info().Str("faq_id", id.String()).Msg("faq deleted")

	return nil
}

// Categories lists distinct FAQ categories.
func (s *faqService) Categories(ctx context.Context, activeOnly bool) ([]string, error) {
	categories, err := s.faqRepo.Categories(ctx, activeOnly)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list faq categories")
		return nil, fmt.Errorf("failed to get faq categories: %w", err)
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}
