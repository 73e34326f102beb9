package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type PasswordHasher struct{ mock.Mock }

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type TokenService struct{ mock.Mock }

func (m *TokenService) Generate(userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenService) Parse(token string) (uint, error) {
	args := m.Called(token)
	return args.Get(0).(uint), args.Error(1)
}

type ActivityService struct{ mock.Mock }

func (m *ActivityService) Record(ctx context.Context, in services.ActivityInput) {
	m.Called(ctx, in)
}

func (m *ActivityService) RecordLegacy(ctx context.Context, userID uint, action, entityType string, entityID uint, details map[string]interface{}) {
	m.Called(ctx, userID, action, entityType, entityID, details)
}

func (m *ActivityService) List(ctx context.Context, viewer *models.User, params models.ActivityListParams) ([]models.ActivityLogEntry, error) {
	args := m.Called(ctx, viewer, params)
	entries, _ := args.Get(0).([]models.ActivityLogEntry)
	return entries, args.Error(1)
}

func (m *ActivityService) Wait() {}

type AuthService struct{ mock.Mock }

func (m *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AuthService) UpdateProfile(ctx context.Context, user *models.User, req models.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AuthService) ChangePassword(ctx context.Context, user *models.User, req models.ChangePasswordRequest) error {
	return m.Called(ctx, user, req).Error(0)
}

func (m *AuthService) Logout(ctx context.Context, user *models.User) {
	m.Called(ctx, user)
}
