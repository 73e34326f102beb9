package services

import (
	"context"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

type UserService interface {
	Roles(actor *models.User) []models.RoleInfo
	List(ctx context.Context, params models.UserListParams) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, actor *models.User, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, actor *models.User, id uint, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
	hasher   PasswordHasher
	activity ActivityService
}

func NewUserService(userRepo repositories.UserRepository, hasher PasswordHasher, activity ActivityService) UserService {
	return &userService{userRepo: userRepo, hasher: hasher, activity: activity}
}

// Roles hides the superadmin role from everyone but superadmins.
func (s *userService) Roles(actor *models.User) []models.RoleInfo {
	if actor.Role == models.RoleSuperadmin {
		return models.RoleCatalog
	}
	roles := make([]models.RoleInfo, 0, len(models.RoleCatalog)-1)
	for _, r := range models.RoleCatalog {
		if r.Value != models.RoleSuperadmin {
			roles = append(roles, r)
		}
	}
	return roles
}

func (s *userService) List(ctx context.Context, params models.UserListParams) ([]models.User, error) {
	return s.userRepo.List(ctx, params)
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, actor *models.User, req models.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, models.ErrorBadRequest{Message: "Username, email, and password are required."}
	}
	if len(req.Password) < minPasswordLength {
		return nil, models.ErrorBadRequest{Message: "Password must be at least 6 characters."}
	}

	role := req.Role
	if role == "" {
		role = models.RoleViewer
	}
	if !role.Valid() {
		return nil, models.ErrorBadRequest{Message: "Invalid role."}
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorConflict{Message: "Username or email already exists."}
	}

	if role == models.RoleSuperadmin && actor.Role != models.RoleSuperadmin {
		return nil, models.ErrorForbidden{Message: "Only superadmins can create superadmin users."}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     role,
		IsActive: active,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.activity.RecordLegacy(ctx, actor.ID, "create_user", "user", user.ID, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	})
	return user, nil
}

func (s *userService) Update(ctx context.Context, actor *models.User, id uint, req models.UpdateUserRequest) (*models.User, error) {
	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if target.Role == models.RoleSuperadmin && actor.Role != models.RoleSuperadmin {
		return nil, models.ErrorForbidden{Message: "Cannot modify superadmin users."}
	}
	if req.Role != nil && *req.Role == models.RoleSuperadmin && actor.Role != models.RoleSuperadmin {
		return nil, models.ErrorForbidden{Message: "Only superadmins can assign superadmin role."}
	}
	if req.Role != nil && *req.Role != "" && !req.Role.Valid() {
		return nil, models.ErrorBadRequest{Message: "Invalid role."}
	}

	username := deref(req.Username)
	email := deref(req.Email)
	if username != "" || email != "" {
		taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrorConflict{Message: "Username or email already in use."}
		}
	}

	fields := map[string]interface{}{}
	if username != "" {
		fields["username"] = username
	}
	if email != "" {
		fields["email"] = email
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil && *req.Role != "" {
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if password := deref(req.Password); password != "" {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	user, err := s.userRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.activity.RecordLegacy(ctx, actor.ID, "update_user", "user", id, map[string]interface{}{
		"changes": req.ChangedKeys(),
	})
	return user, nil
}

// Delete is a hard delete. Authored content survives with author_id nulled.
func (s *userService) Delete(ctx context.Context, actor *models.User, id uint) error {
	if id == actor.ID {
		return models.ErrorForbidden{Message: "Cannot delete your own account."}
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.activity.RecordLegacy(ctx, actor.ID, "delete_user", "user", id, map[string]interface{}{
		"username": deleted.Username,
	})
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
