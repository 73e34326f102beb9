package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stakegulf-cms/models"
)

type GuideRepository struct{ mock.Mock }

func (m *GuideRepository) Create(ctx context.Context, guide *models.Guide) error {
	return m.Called(ctx, guide).Error(0)
}

func (m *GuideRepository) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *GuideRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Guide, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *GuideRepository) List(ctx context.Context, params models.GuideListParams) ([]models.Guide, error) {
	args := m.Called(ctx, params)
	guides, _ := args.Get(0).([]models.Guide)
	return guides, args.Error(1)
}

func (m *GuideRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Guide, error) {
	args := m.Called(ctx, id, fields, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *GuideRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type PlatformRepository struct{ mock.Mock }

func (m *PlatformRepository) Create(ctx context.Context, platform *models.Platform) error {
	return m.Called(ctx, platform).Error(0)
}

func (m *PlatformRepository) GetByID(ctx context.Context, id uint) (*models.Platform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Platform), args.Error(1)
}

func (m *PlatformRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Platform, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Platform), args.Error(1)
}

func (m *PlatformRepository) List(ctx context.Context, params models.PlatformListParams) ([]models.Platform, error) {
	args := m.Called(ctx, params)
	platforms, _ := args.Get(0).([]models.Platform)
	return platforms, args.Error(1)
}

func (m *PlatformRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Platform, error) {
	args := m.Called(ctx, ids)
	platforms, _ := args.Get(0).([]models.Platform)
	return platforms, args.Error(1)
}

func (m *PlatformRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Platform, error) {
	args := m.Called(ctx, id, fields, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Platform), args.Error(1)
}

func (m *PlatformRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type TopListRepository struct{ mock.Mock }

func (m *TopListRepository) Create(ctx context.Context, list *models.TopList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *TopListRepository) GetByID(ctx context.Context, id uint) (*models.TopList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TopList), args.Error(1)
}

func (m *TopListRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.TopList, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TopList), args.Error(1)
}

func (m *TopListRepository) List(ctx context.Context, params models.TopListListParams) ([]models.TopList, error) {
	args := m.Called(ctx, params)
	lists, _ := args.Get(0).([]models.TopList)
	return lists, args.Error(1)
}

func (m *TopListRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.TopList, error) {
	args := m.Called(ctx, id, fields, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TopList), args.Error(1)
}

func (m *TopListRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type NewsRepository struct{ mock.Mock }

func (m *NewsRepository) Create(ctx context.Context, news *models.News) error {
	return m.Called(ctx, news).Error(0)
}

func (m *NewsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *NewsRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.News, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *NewsRepository) List(ctx context.Context, params models.NewsListParams) ([]models.News, error) {
	args := m.Called(ctx, params)
	news, _ := args.Get(0).([]models.News)
	return news, args.Error(1)
}

func (m *NewsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.News, error) {
	args := m.Called(ctx, id, fields, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *NewsRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type PageRepository struct{ mock.Mock }

func (m *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return m.Called(ctx, page).Error(0)
}

func (m *PageRepository) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *PageRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Page, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *PageRepository) List(ctx context.Context, params models.PageListParams) ([]models.Page, error) {
	args := m.Called(ctx, params)
	pages, _ := args.Get(0).([]models.Page)
	return pages, args.Error(1)
}

func (m *PageRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Page, error) {
	args := m.Called(ctx, id, fields, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *PageRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type SettingRepository struct{ mock.Mock }

func (m *SettingRepository) List(ctx context.Context) ([]models.Setting, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).([]models.Setting)
	return settings, args.Error(1)
}

func (m *SettingRepository) ListWithEditors(ctx context.Context) ([]models.Setting, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).([]models.Setting)
	return settings, args.Error(1)
}

func (m *SettingRepository) Create(ctx context.Context, setting *models.Setting) error {
	return m.Called(ctx, setting).Error(0)
}

func (m *SettingRepository) UpdateValue(ctx context.Context, key string, value *string, updatedBy uint) (*models.Setting, error) {
	args := m.Called(ctx, key, value, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (m *SettingRepository) EnsureDefault(ctx context.Context, setting *models.Setting) error {
	return m.Called(ctx, setting).Error(0)
}
