package services

import (
	"context"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entityGuide = "guide"

type GuideService interface {
	List(ctx context.Context, params models.GuideListParams) ([]models.Guide, error)
	Get(ctx context.Context, identifier string) (*models.Guide, error)
	Create(ctx context.Context, actor *models.User, req models.GuideRequest) (*models.Guide, error)
	// Update leaves every omitted field unchanged.
	Update(ctx context.Context, actor *models.User, id uint, req models.GuideRequest) (*models.Guide, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type guideService struct {
	guideRepo repositories.GuideRepository
	activity  ActivityService
}

func NewGuideService(guideRepo repositories.GuideRepository, activity ActivityService) GuideService {
	return &guideService{guideRepo: guideRepo, activity: activity}
}

func (s *guideService) List(ctx context.Context, params models.GuideListParams) ([]models.Guide, error) {
	params.Status = listStatus(params.Status)
	return s.guideRepo.List(ctx, params)
}

func (s *guideService) Get(ctx context.Context, identifier string) (*models.Guide, error) {
	return s.guideRepo.GetByIdentifier(ctx, identifier)
}

func (s *guideService) Create(ctx context.Context, actor *models.User, req models.GuideRequest) (*models.Guide, error) {
	if err := requireNamed(req.Title, req.Slug, "Title and slug are required."); err != nil {
		return nil, err
	}

	authorName := actor.DisplayName()
	guide := &models.Guide{
		Title:         *req.Title,
		Slug:          *req.Slug,
		Category:      req.Category,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ContentBlocks: blocksOrEmpty(req.ContentBlocks),
		ReadTime:      req.ReadTime,
		Status:        stringOr(req.Status, statusDraft),
		AuthorID:      &actor.ID,
		AuthorName:    &authorName,
		CreatedBy:     &actor.ID,
	}
	if err := s.guideRepo.Create(ctx, guide); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entityGuide, guide.ID, guide.Title))
	return guide, nil
}

func (s *guideService) Update(ctx context.Context, actor *models.User, id uint, req models.GuideRequest) (*models.Guide, error) {
	guide, err := s.guideRepo.Update(ctx, id, req.Fields(), actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entityGuide, guide.ID, guide.Title))
	return guide, nil
}

func (s *guideService) Delete(ctx context.Context, actor *models.User, id uint) error {
	guide, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guideRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionDelete, entityGuide, id, guide.Title))
	return nil
}
