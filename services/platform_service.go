package services

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entityPlatform = "platform"

type PlatformService interface {
	List(ctx context.Context, params models.PlatformListParams) ([]models.Platform, error)
	Get(ctx context.Context, identifier string) (*models.Platform, error)
	Create(ctx context.Context, actor *models.User, req models.PlatformRequest) (*models.Platform, error)
	Update(ctx context.Context, actor *models.User, id uint, req models.PlatformRequest) (*models.Platform, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type platformService struct {
	platformRepo repositories.PlatformRepository
	activity     ActivityService
}

func NewPlatformService(platformRepo repositories.PlatformRepository, activity ActivityService) PlatformService {
	return &platformService{platformRepo: platformRepo, activity: activity}
}

func (s *platformService) List(ctx context.Context, params models.PlatformListParams) ([]models.Platform, error) {
	params.Status = listStatus(params.Status)
	return s.platformRepo.List(ctx, params)
}

func (s *platformService) Get(ctx context.Context, identifier string) (*models.Platform, error) {
	return s.platformRepo.GetByIdentifier(ctx, identifier)
}

func (s *platformService) Create(ctx context.Context, actor *models.User, req models.PlatformRequest) (*models.Platform, error) {
	if err := requireNamed(req.Name, req.Slug, "Name and slug are required."); err != nil {
		return nil, err
	}

	platform := &models.Platform{
		Name:           *req.Name,
		Slug:           *req.Slug,
		PayoutSpeed:    req.PayoutSpeed,
		Bonus:          req.Bonus,
		Type:           arrayOrNil(req.Type),
		Strengths:      arrayOrNil(req.Strengths),
		Considerations: arrayOrNil(req.Considerations),
		Logo:           req.Logo,
		Description:    req.Description,
		Markets:        arrayOrNil(req.Markets),
		Payments:       arrayOrNil(req.Payments),
		Security:       req.Security,
		Support:        req.Support,
		AffiliateURL:   req.AffiliateURL,
		Status:         stringOr(req.Status, statusDraft),
		CreatedBy:      &actor.ID,
	}
	if req.Rating != nil {
		platform.Rating = *req.Rating
	}
	if req.Features != nil {
		platform.Features = *req.Features
	} else {
		platform.Features = datatypes.JSON("{}")
	}

	if err := s.platformRepo.Create(ctx, platform); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entityPlatform, platform.ID, platform.Name))
	return platform, nil
}

func (s *platformService) Update(ctx context.Context, actor *models.User, id uint, req models.PlatformRequest) (*models.Platform, error) {
	platform, err := s.platformRepo.Update(ctx, id, req.Fields(), actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entityPlatform, platform.ID, platform.Name))
	return platform, nil
}

func (s *platformService) Delete(ctx context.Context, actor *models.User, id uint) error {
	platform, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.platformRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionDelete, entityPlatform, id, platform.Name))
	return nil
}

func arrayOrNil(v *pq.StringArray) pq.StringArray {
	if v == nil {
		return nil
	}
	return *v
}
