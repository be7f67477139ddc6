package service

import (
	"context"
	"testing"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *model.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	args := m.Called(ctx, id, active)
	return args.Bool(0), args.Error(1)
}

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestUserService_Register_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockUserRepository)
	tokens := testTokenManager()
	service := NewUserService(mockRepo, tokens, logger)

	mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

	resp, err := service.Register(ctx, &model.RegisterRequest{
		Name:     " Ada Lovelace ",
		Email:    " Ada@Example.com ",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Ada Lovelace", resp.User.Name)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, model.RoleCustomer, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.NotEmpty(t, resp.Token)

	// The issued token round-trips through verification.
	userID, role, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, model.RoleCustomer, role)

	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, testTokenManager(), logger)

	existing := &model.User{ID: uuid.New(), Email: "ada@example.com"}
	mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(existing, nil)

	resp, err := service.Register(ctx, &model.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	assert.Equal(t, model.ErrEmailTaken, err)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, testTokenManager(), logger)

	tests := []struct {
		name string
		req  *model.RegisterRequest
	}{
		{name: "Blank name", req: &model.RegisterRequest{Email: "a@b.com", Password: "longenough"}},
		{name: "Blank email", req: &model.RegisterRequest{Name: "Ada", Password: "longenough"}},
		{name: "Email without at sign", req: &model.RegisterRequest{Name: "Ada", Email: "nope", Password: "longenough"}},
		{name: "Short password", req: &model.RegisterRequest{Name: "Ada", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Register(ctx, tt.req)

			require.Error(t, err)
			assert.Nil(t, resp)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
		})
	}

	mockRepo.AssertNotCalled(t, "GetByEmail")
}

func TestUserService_Login(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		IsActive:     true,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokenManager(), logger)

		mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)

		resp, err := service.Login(ctx, &model.LoginRequest{Email: "Ada@example.com", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokenManager(), logger)

		mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)

		resp, err := service.Login(ctx, &model.LoginRequest{Email: "ada@example.com", Password: "wrong"})

		assert.Equal(t, model.ErrInvalidCredentials, err)
		assert.Nil(t, resp)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokenManager(), logger)

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

		resp, err := service.Login(ctx, &model.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.Equal(t, model.ErrInvalidCredentials, err)
		assert.Nil(t, resp)
	})

	t.Run("Disabled account", func(t *testing.T) {
		disabled := *user
		disabled.IsActive = false

		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokenManager(), logger)

		mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(&disabled, nil)

		resp, err := service.Login(ctx, &model.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})

		require.Error(t, err)
		assert.Nil(t, resp)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeForbidden, domainErr.Code)
	})
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	user := &model.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "111",
	}

	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, testTokenManager(), logger)

	mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(true, nil)

	newPhone := "222"
	updated, err := service.UpdateProfile(ctx, user.ID, &model.ProfileUpdateRequest{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "222", updated.Phone)
}

func TestUserService_SetActive_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, testTokenManager(), logger)

	id := uuid.New()
	mockRepo.On("SetActive", ctx, id, false).Return(false, nil)

	err := service.SetActive(ctx, id, false)

	assert.Equal(t, model.ErrUserNotFound, err)
}
