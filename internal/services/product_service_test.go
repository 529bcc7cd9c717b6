package services_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"silktouch/internal/apperror"
	"silktouch/internal/config"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
	"silktouch/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

var pagination = config.PaginationConfig{DefaultLimit: 12, MaxLimit: 100}

type fakeStorage struct {
	saved []string
}

func (f *fakeStorage) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	f.saved = append(f.saved, originalName)
	return "/uploads/" + originalName, nil
}

func newProductService(repo *MockProductRepository) *services.ProductService {
	return services.NewProductService(repo, &fakeStorage{}, pagination, zap.NewNop())
}

func TestProductService_ListClampsPaging(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	products := []models.Product{{ID: "1", Name: "Product A", Price: 10}}
	mockRepo.On("List", ctx, repositories.ProductFilter{Page: 1, Limit: 12}).Return(products, int64(25), nil).Once()

	page, err := service.List(ctx, repositories.ProductFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, products, page.Products)

	mockRepo.On("List", ctx, repositories.ProductFilter{Page: 2, Limit: 100}).Return([]models.Product{}, int64(0), nil).Once()
	page, err = service.List(ctx, repositories.ProductFilter{Page: 2, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListRejectsInvertedPriceRange(t *testing.T) {
	service := newProductService(new(MockProductRepository))
	lo, hi := 100.0, 50.0
	_, err := service.List(context.Background(), repositories.ProductFilter{MinPrice: &lo, MaxPrice: &hi})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestProductService_Get(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	expected := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}
	mockRepo.On("GetByID", ctx, "1").Return(expected, nil).Once()
	product, err := service.Get(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", ctx, "99").Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.Get(ctx, "99")
	assert.Nil(t, product)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Product not found")

	mockRepo.On("GetByID", ctx, "boom").Return(nil, fmt.Errorf("database error")).Once()
	_, err = service.Get(ctx, "boom")
	assert.True(t, apperror.Is(err, apperror.KindInternal))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateValidation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	_, err := service.Create(context.Background(), services.ProductInput{
		Name:     "Shirt",
		Category: "pets",
		Sizes:    []string{"M", "XXXL"},
	}, nil)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "is required", appErr.Fields["price"])
	assert.Equal(t, "is required", appErr.Fields["description"])
	assert.Equal(t, "is required", appErr.Fields["subcategory"])
	assert.Contains(t, appErr.Fields["category"], "must be one of")
	assert.Contains(t, appErr.Fields, "sizes[1]")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateStoresUploads(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := &fakeStorage{}
	service := services.NewProductService(mockRepo, store, pagination, zap.NewNop())
	ctx := context.Background()

	price := 129.0
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.Create(ctx, services.ProductInput{
		Name:        "Classic White Shirt",
		Description: "Cotton shirt",
		Price:       &price,
		Category:    models.CategoryMen,
		Subcategory: "shirts",
		Sizes:       []string{"M", "One Size"},
		Images:      []string{"ignored.jpg"},
	}, []services.Upload{{Filename: "a.jpg", Data: []byte("a")}, {Filename: "b.png", Data: []byte("b")}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.png"}, product.Images)
	assert.Equal(t, 129.0, product.Price)
	assert.Equal(t, []string{"a.jpg", "b.png"}, store.saved)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateAppliesPatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	existing := &models.Product{ID: "1", Name: "Old", Description: "d", Price: 10, Category: "men", Subcategory: "shirts", Stock: 3}
	mockRepo.On("GetByID", ctx, "1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Name == "New" && p.Price == 12 && p.Stock == 3
	})).Return(nil).Once()

	_, err := service.Update(ctx, "1", []byte(`{"id":"hijack","name":"New","price":12}`))
	require.NoError(t, err)

	_, err = service.Update(ctx, "1", []byte(`{"category":"pets"}`))
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	mockRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestProductService_UpdateIgnoresDerivedFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	existing := &models.Product{
		ID: "1", Name: "Old", Description: "d", Price: 10, Category: "men", Subcategory: "shirts",
		Rating:  4.2,
		Reviews: []models.Review{{ID: 7, Rating: 4.2}},
		Tags:    []string{"keep"},
	}
	mockRepo.On("GetByID", ctx, "1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Rating == 4.2 && len(p.Reviews) == 1 && p.Reviews[0].ID == 7 &&
			p.Stock == 0 && p.Featured && assert.ObjectsAreEqual([]string{"keep"}, p.Tags)
	})).Return(nil).Once()

	_, err := service.Update(ctx, "1", []byte(`{"rating":5,"reviews":[],"featured":true}`))
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)

	_, err = service.Update(ctx, "1", []byte(`{"price":"cheap"}`))
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	mockRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestProductService_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "1").Return(nil).Once()
	assert.NoError(t, service.Delete(ctx, "1"))

	mockRepo.On("Delete", ctx, "99").Return(fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	assert.True(t, apperror.Is(service.Delete(ctx, "99"), apperror.KindNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_AddReview(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	_, err := service.AddReview(ctx, "1", "user-1", services.ReviewInput{Rating: 6})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	mockRepo.On("AddReview", ctx, "1", mock.MatchedBy(func(r *models.Review) bool {
		return r.UserID == "user-1" && r.Rating == 4 && r.Comment == "Nice"
	})).Return(&models.Product{ID: "1", Rating: 4}, nil).Once()
	product, err := service.AddReview(ctx, "1", "user-1", services.ReviewInput{Rating: 4, Comment: " Nice "})
	require.NoError(t, err)
	assert.Equal(t, 4.0, product.Rating)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Suggestions(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	names, err := service.Suggestions(ctx, "d")
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)

	mockRepo.On("Suggestions", ctx, "dr", 5).Return([]string{"Evening Dress"}, nil).Once()
	names, err = service.Suggestions(ctx, "dr")
	require.NoError(t, err)
	assert.Equal(t, []string{"Evening Dress"}, names)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Export(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)
	ctx := context.Background()

	mockRepo.On("All", ctx).Return([]models.Product{{ID: "1", Name: "Shirt", Price: 129}}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.Export(ctx, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Equal(t, "Shirt", file.Sheets[0].Rows[1].Cells[1].String())
}
