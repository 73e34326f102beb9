package services

import (
	"context"
	"errors"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const minPasswordLength = 6

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	// Authenticate resolves a bearer token to a live, active user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, user *models.User, req models.ChangePasswordRequest) error
	Logout(ctx context.Context, user *models.User)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	hasher   PasswordHasher
	activity ActivityService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, hasher PasswordHasher, activity ActivityService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		activity: activity,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, models.ErrorBadRequest{Message: "Username and password are required."}
	}

	user, err := s.userRepo.GetByLogin(ctx, req.Username)
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return nil, models.ErrorUnauthorized{Message: "Invalid credentials."}
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrorForbidden{Message: "Account is deactivated. Contact administrator."}
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return nil, models.ErrorUnauthorized{Message: "Invalid credentials."}
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	s.activity.RecordLegacy(ctx, user.ID, "login", "user", user.ID, map[string]interface{}{"method": "password"})

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, models.ErrorUnauthorized{Message: "Token expired."}
		}
		return nil, models.ErrorUnauthorized{Message: "Invalid token."}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return nil, models.ErrorUnauthorized{Message: "User not found."}
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrorForbidden{Message: "Account is deactivated."}
	}
	return user, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *authService) UpdateProfile(ctx context.Context, user *models.User, req models.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}

	if req.Email != nil && *req.Email != "" {
		taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, "", *req.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrorConflict{Message: "Email is already in use."}
		}
		fields["email"] = *req.Email
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	return s.userRepo.Update(ctx, user.ID, fields)
}

func (s *authService) ChangePassword(ctx context.Context, user *models.User, req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return models.ErrorBadRequest{Message: "Current and new passwords are required."}
	}
	if len(req.NewPassword) < minPasswordLength {
		return models.ErrorBadRequest{Message: "Password must be at least 6 characters."}
	}

	current, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(current.Password, req.CurrentPassword); err != nil {
		return models.ErrorUnauthorized{Message: "Current password is incorrect."}
	}

	hashed, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"password": hashed}); err != nil {
		return err
	}

	s.activity.RecordLegacy(ctx, user.ID, "password_change", "user", user.ID, nil)
	return nil
}

func (s *authService) Logout(ctx context.Context, user *models.User) {
	s.activity.RecordLegacy(ctx, user.ID, "logout", "user", user.ID, nil)
}
