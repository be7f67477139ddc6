package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new customer account and returns it with a token.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "Name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, model.NewDomainError(model.ErrCodeValidation, "A valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, model.NewDomainError(model.ErrCodeValidation, "Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("email", email).Msg("registration with existing email")
		return nil, model.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      req.Address,
		Role:         model.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return &model.LoginResponse{User: user, Token: token}, nil
}

// Login authenticates a user and returns a bearer token.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Same error for unknown email and wrong password; do not reveal which.
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", email).Msg("failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, model.NewDomainError(model.ErrCodeForbidden, "Account is disabled")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return &model.LoginResponse{User: user, Token: token}, nil
}

// GetProfile retrieves the user's profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile applies a partial profile update.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.ProfileUpdateRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, model.NewDomainError(model.ErrCodeValidation, "Name cannot be empty")
		}
		user.Name = name
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	user.UpdatedAt = time.Now()

	found, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !found {
		return nil, model.ErrUserNotFound
	}

	s.logger.Debug().Str("user_id", userID.String()).Msg("profile updated")

	return user, nil
}

// List retrieves users (admin).
func (s *userService) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	limit, offset = clampPagination(limit, offset)

	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// SetActive enables or disables an account (admin).
func (s *userService) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	found, err := s.userRepo.SetActive(ctx, userID, active)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if !found {
		return model.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", userID.String()).Bool("active", active).Msg("user active flag updated")

	return nil
}
