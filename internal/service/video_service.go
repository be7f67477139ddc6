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

// videoService implements VideoService.
type videoService struct {
	videoRepo repository.VideoRepository
	logger    zerolog.Logger
}

// NewVideoService creates a new video service.
func NewVideoService(videoRepo repository.VideoRepository, logger zerolog.Logger) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		logger:    logger.With().Str("service", "video").Logger(),
	}
}

// ListPublic retrieves active videos for the storefront.
func (s *videoService) ListPublic(ctx context.Context) ([]model.Video, error) {
	videos, err := s.videoRepo.List(ctx, true)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list videos")
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}

	return videos, nil
}

// ListAdmin retrieves all videos for the admin panel.
func (s *videoService) ListAdmin(ctx context.Context) ([]model.Video, error) {
	videos, err := s.videoRepo.List(ctx, false)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list videos")
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}

	return videos, nil
}

func validateVideoRequest(req *model.VideoRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Video title is required")
	}
	if strings.TrimSpace(req.URL) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Video URL is required")
	}
	return nil
}

func applyVideoRequest(v *model.Video, req *model.VideoRequest) {
	v.Title = strings.TrimSpace(req.Title)
	v.Description = req.Description
	v.URL = strings.TrimSpace(req.URL)
	v.Thumbnail = req.Thumbnail
	v.Category = strings.TrimSpace(req.Category)
	if req.SortOrder != nil {
		v.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
}

// Create adds a video.
func (s *videoService) Create(ctx context.Context, req *model.VideoRequest) (*model.Video, error) {
	if err := validateVideoRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	video := &model.Video{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyVideoRequest(video, req)

	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.logger.Error().Err(err).Msg("failed to create video")
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	s.logger.Info().Str("video_id", video.ID.String()).Str("title", video.Title).Msg("video created")

	return video, nil
}

// Update overwrites a video's fields from the request.
func (s *videoService) Update(ctx context.Context, id uuid.UUID, req *model.VideoRequest) (*model.Video, error) {
	if err := validateVideoRequest(req); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	if video == nil {
		return nil, model.ErrVideoNotFound
	}

	applyVideoRequest(video, req)
	video.UpdatedAt = time.Now()

	found, err := s.videoRepo.Update(ctx, video)
	if err != nil {
		s.logger.Error().Err(err).Str("video_id", id.String()).Msg("failed to update video")
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	if !found {
		return nil, model.ErrVideoNotFound
	}

	return video, nil
}

// Delete removes a video.
func (s *videoService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("video_id", id.String()).Msg("failed to delete video")
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if !found {
		return model.ErrVideoNotFound
	}

	s.logger.Info().Str("video_id", id.String()).Msg("video deleted")

	return nil
}
