package services

import (
	"context"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entitySetting = "setting"

type SettingService interface {
	// Map returns every setting as key → value.
	Map(ctx context.Context) (map[string]*string, error)
	Fonts() []models.Font
	All(ctx context.Context) ([]models.Setting, error)
	Update(ctx context.Context, actor *models.User, key string, req models.UpdateSettingRequest) (*models.Setting, error)
	Create(ctx context.Context, actor *models.User, req models.CreateSettingRequest) (*models.Setting, error)
	EnsureDefault(ctx context.Context, setting *models.Setting) error
}

type settingService struct {
	settingRepo repositories.SettingRepository
	activity    ActivityService
}

func NewSettingService(settingRepo repositories.SettingRepository, activity ActivityService) SettingService {
	return &settingService{settingRepo: settingRepo, activity: activity}
}

func (s *settingService) Map(ctx context.Context) (map[string]*string, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]*string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

func (s *settingService) Fonts() []models.Font {
	return models.FontCatalog
}

func (s *settingService) All(ctx context.Context) ([]models.Setting, error) {
	return s.settingRepo.ListWithEditors(ctx)
}

func (s *settingService) Update(ctx context.Context, actor *models.User, key string, req models.UpdateSettingRequest) (*models.Setting, error) {
	setting, err := s.settingRepo.UpdateValue(ctx, key, req.Value, actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entitySetting, setting.ID, setting.Key))
	return setting, nil
}

func (s *settingService) Create(ctx context.Context, actor *models.User, req models.CreateSettingRequest) (*models.Setting, error) {
	setting := &models.Setting{
		Key:         req.Key,
		Value:       req.Value,
		Type:        req.Type,
		Description: req.Description,
		UpdatedBy:   &actor.ID,
	}
	if setting.Type == "" {
		setting.Type = "string"
	}
	if err := s.settingRepo.Create(ctx, setting); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entitySetting, setting.ID, setting.Key))
	return setting, nil
}

func (s *settingService) EnsureDefault(ctx context.Context, setting *models.Setting) error {
	if setting.Type == "" {
		setting.Type = "string"
	}
	return s.settingRepo.EnsureDefault(ctx, setting)
}
