package usecase_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
)

// MockSiteRepository is a mock of repository.SiteRepository
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) List(ctx context.Context, q *queryparams.Query) ([]domain.Site, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Site), args.Int(1), args.Error(2)
}

func (m *MockSiteRepository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) Insert(ctx context.Context, values map[string]interface{}) (*domain.Site, error) {
	args := m.Called(ctx, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) Update(ctx context.Context, id int64, values map[string]interface{}) (*domain.Site, error) {
	args := m.Called(ctx, id, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSiteRepository) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceStats), args.Error(1)
}

func (m *MockSiteRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Site, error) {
	args := m.Called(ctx, lat, lon, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

// MockPhotoRepository is a mock of repository.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, url string, size float64) (*domain.Photo, error) {
	args := m.Called(ctx, url, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Attach(ctx context.Context, siteID, photoID int64) error {
	args := m.Called(ctx, siteID, photoID)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetAttachment(ctx context.Context, siteID, photoID int64) (*domain.PhotoAttachment, error) {
	args := m.Called(ctx, siteID, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhotoAttachment), args.Error(1)
}

func (m *MockPhotoRepository) Detach(ctx context.Context, siteID, photoID int64) error {
	args := m.Called(ctx, siteID, photoID)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhotoRepository) ListBySiteIDs(ctx context.Context, siteIDs []int64) (map[int64][]domain.Photo, error) {
	args := m.Called(ctx, siteIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Photo), args.Error(1)
}

// MockSiteTypeRepository is a mock of repository.SiteTypeRepository
type MockSiteTypeRepository struct {
	mock.Mock
}

func (m *MockSiteTypeRepository) List(ctx context.Context, q *queryparams.Query) ([]domain.SiteType, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.SiteType), args.Int(1), args.Error(2)
}

func (m *MockSiteTypeRepository) GetByID(ctx context.Context, id int64) (*domain.SiteType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteType), args.Error(1)
}

func (m *MockSiteTypeRepository) Insert(ctx context.Context, values map[string]interface{}) (*domain.SiteType, error) {
	args := m.Called(ctx, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteType), args.Error(1)
}

func (m *MockSiteTypeRepository) Update(ctx context.Context, id int64, values map[string]interface{}) (*domain.SiteType, error) {
	args := m.Called(ctx, id, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteType), args.Error(1)
}

func (m *MockSiteTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSiteTypeRepository) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceStats), args.Error(1)
}

func (m *MockSiteTypeRepository) GetByCode(ctx context.Context, code string) (*domain.SiteType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteType), args.Error(1)
}

// MockFileStorage is a mock of repository.FileStorage
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Upload(ctx context.Context, file *multipart.FileHeader, dir string) (*domain.StoredFile, error) {
	args := m.Called(ctx, file, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredFile), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// passthroughTx runs the transactional function directly, standing in
// for a real database transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
