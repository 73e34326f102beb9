package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stakegulf-cms/models"
)

const (
	settingNotFound = "Setting not found"
	settingConflict = "Setting already exists"
)

type SettingRepository interface {
	List(ctx context.Context) ([]models.Setting, error)
	ListWithEditors(ctx context.Context) ([]models.Setting, error)
	Create(ctx context.Context, setting *models.Setting) error
	UpdateValue(ctx context.Context, key string, value *string, updatedBy uint) (*models.Setting, error)
	// EnsureDefault inserts the setting unless the key already exists.
	EnsureDefault(ctx context.Context, setting *models.Setting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) List(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).Order("id").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) ListWithEditors(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).
		Select("site_settings.*, users.username AS updated_by_name").
		Joins("LEFT JOIN users ON site_settings.updated_by = users.id").
		Order("site_settings.id").
		Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Create(ctx context.Context, setting *models.Setting) error {
	return translate(r.db.WithContext(ctx).Create(setting).Error, settingNotFound, settingConflict)
}

func (r *settingRepository) UpdateValue(ctx context.Context, key string, value *string, updatedBy uint) (*models.Setting, error) {
	res := r.db.WithContext(ctx).Model(&models.Setting{}).
		Where("setting_key = ?", key).
		Updates(map[string]interface{}{
			"setting_value": value,
			"updated_by":    updatedBy,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, settingNotFound, settingConflict)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrorNotFound{Message: settingNotFound}
	}

	var setting models.Setting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, translate(err, settingNotFound, settingConflict)
	}
	return &setting, nil
}

func (r *settingRepository) EnsureDefault(ctx context.Context, setting *models.Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "setting_key"}}, DoNothing: true}).
		Create(setting).Error
}
