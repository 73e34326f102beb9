package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stakegulf-cms/models"
)

const (
	userNotFound = "User not found."
	userConflict = "Username or email already exists."
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByLogin matches the value against username or email.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	List(ctx context.Context, params models.UserListParams) ([]models.User, error)
	// ExistsByUsernameOrEmail ignores empty values and the row with excludeID.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id uint) (*models.User, error)
	ListIDsByRole(ctx context.Context, role models.Role) ([]uint, error)
	TouchLastLogin(ctx context.Context, id uint) error
	Upsert(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, userNotFound, userConflict)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, userNotFound, userConflict)
	}
	return &user, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		return nil, translate(err, userNotFound, userConflict)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, params models.UserListParams) ([]models.User, error) {
	var users []models.User

	query := r.db.WithContext(ctx)
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	switch params.Status {
	case "active":
		query = query.Where("is_active = ?", true)
	case "inactive":
		query = query.Where("is_active = ?", false)
	}

	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error) {
	if username == "" && email == "" {
		return false, nil
	}

	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{})
	switch {
	case username != "" && email != "":
		query = query.Where("(username = ? OR email = ?)", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		query = query.Where("email = ?", email)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	values := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, translate(res.Error, userNotFound, userConflict)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrorNotFound{Message: userNotFound}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the row and returns it. Content rows keep their
// denormalised author_name; their foreign keys are nulled by the schema.
func (r *userRepository) Delete(ctx context.Context, id uint) (*models.User, error) {
	var deleted []models.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "username"}}}).
		Where("id = ?", id).
		Delete(&deleted)
	if res.Error != nil {
		return nil, translate(res.Error, userNotFound, userConflict)
	}
	if len(deleted) == 0 {
		return nil, models.ErrorNotFound{Message: userNotFound}
	}
	return &deleted[0], nil
}

func (r *userRepository) ListIDsByRole(ctx context.Context, role models.Role) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Pluck("id", &ids).Error
	return ids, err
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("last_login", time.Now()).Error
}

// Upsert inserts the user or, on a username clash, resets password, role and
// active flag. Used by the seed command.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password", "role", "is_active", "updated_at"}),
	}).Create(user).Error
}
