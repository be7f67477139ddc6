package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) AppendImage(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	args := m.Called(ctx, id, url)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) (bool, error) {
	args := m.Called(ctx, tx, id, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) RestoreStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) error {
	args := m.Called(ctx, tx, id, qty)
	return args.Error(0)
}

// MockMediaStore is a mock implementation of media.Store.
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Put(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, name, contentType, content)
	return args.String(0), args.Error(1)
}

func testProduct(sku string, price float64, stock int) *model.Product {
	return &model.Product{
		ID:        uuid.New(),
		Name:      "Glow Diffuser " + sku,
		Price:     price,
		SKU:       sku,
		Stock:     stock,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProductService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockStore := new(MockMediaStore)
	service := NewProductService(mockRepo, mockStore, logger)

	mockRepo.On("GetBySKU", ctx, "GD-100").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := service.Create(ctx, &model.ProductRequest{
		Name:  "Glow Diffuser",
		SKU:   "GD-100",
		Price: 29.99,
		Stock: 50,
	})

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "GD-100", product.SKU)
	assert.True(t, product.IsActive)

	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_DuplicateSKU(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, new(MockMediaStore), logger)

	mockRepo.On("GetBySKU", ctx, "GD-100").Return(testProduct("GD-100", 29.99, 10), nil)

	product, err := service.Create(ctx, &model.ProductRequest{
		Name:  "Glow Diffuser",
		SKU:   "GD-100",
		Price: 29.99,
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrSKUTaken, err)
	assert.Nil(t, product)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestProductService_Create_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, new(MockMediaStore), logger)

	tests := []struct {
		name string
		req  *model.ProductRequest
	}{
		{
			name: "Missing name",
			req:  &model.ProductRequest{SKU: "GD-100", Price: 10},
		},
		{
			name: "Missing SKU",
			req:  &model.ProductRequest{Name: "Diffuser", Price: 10},
		},
		{
			name: "Negative price",
			req:  &model.ProductRequest{Name: "Diffuser", SKU: "GD-100", Price: -1},
		},
		{
			name: "Negative stock",
			req:  &model.ProductRequest{Name: "Diffuser", SKU: "GD-100", Price: 10, Stock: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.Create(ctx, tt.req)

			require.Error(t, err)
			assert.Nil(t, product)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := testProduct("GD-100", 29.99, 10)

	tests := []struct {
		name        string
		mockProduct *model.Product
		mockError   error
		expectedErr error
	}{
		{
			name:        "Success",
			mockProduct: existing,
		},
		{
			name:        "Not found",
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:      "Repository error",
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, new(MockMediaStore), logger)

			mockRepo.On("GetByID", ctx, existing.ID).Return(tt.mockProduct, tt.mockError)

			product, err := service.GetByID(ctx, existing.ID, false)

			if tt.mockError != nil {
				require.Error(t, err)
				return
			}
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, existing.ID, product.ID)
		})
	}
}

func TestProductService_GetByID_Inactive(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	retired := testProduct("VD-001", 14.99, 0)
	retired.IsActive = false

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, new(MockMediaStore), logger)

	mockRepo.On("GetByID", ctx, retired.ID).Return(retired, nil)

	_, err := service.GetByID(ctx, retired.ID, false)
	assert.Equal(t, model.ErrProductNotFound, err)

	product, err := service.GetByID(ctx, retired.ID, true)
	require.NoError(t, err)
	assert.Equal(t, retired.ID, product.ID)
}

func TestProductService_Update_SKUConflict(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := testProduct("GD-100", 29.99, 10)
	other := testProduct("GD-200", 19.99, 5)

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, new(MockMediaStore), logger)

	mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
	mockRepo.On("GetBySKU", ctx, "GD-200").Return(other, nil)

	product, err := service.Update(ctx, existing.ID, &model.ProductRequest{
		Name:  existing.Name,
		SKU:   "GD-200",
		Price: existing.Price,
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrSKUTaken, err)
	assert.Nil(t, product)

	mockRepo.AssertNotCalled(t, "Update")
}

func TestProductService_List_ClampsPagination(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, new(MockMediaStore), logger)

	mockRepo.On("List", ctx, model.ProductFilter{ActiveOnly: true, Limit: 100, Offset: 0}).
		Return([]model.Product{}, nil)

	_, err := service.List(ctx, model.ProductFilter{ActiveOnly: true, Limit: 5000, Offset: -3})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_AttachImage(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := testProduct("GD-100", 29.99, 10)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockStore := new(MockMediaStore)
		service := NewProductService(mockRepo, mockStore, logger)

		mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		mockStore.On("Put", ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
			Return("https://cdn.example.com/abc.png", nil)
		mockRepo.On("AppendImage", ctx, existing.ID, "https://cdn.example.com/abc.png").Return(true, nil)

		url, err := service.AttachImage(ctx, existing.ID, "photo.png", "image/png", strings.NewReader("img"))

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/abc.png", url)

		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockStore := new(MockMediaStore)
		service := NewProductService(mockRepo, mockStore, logger)

		mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		_, err := service.AttachImage(ctx, existing.ID, "notes.txt", "text/plain", strings.NewReader("x"))

		require.Error(t, err)
		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeValidation, domainErr.Code)

		mockStore.AssertNotCalled(t, "Put")
	})
}
