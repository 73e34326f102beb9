package services

import (
	"context"

	"github.com/lib/pq"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entityTopList = "top-list"

type TopListService interface {
	// List and Get resolve each list's platforms, highest rated first.
	List(ctx context.Context, params models.TopListListParams) ([]models.TopList, error)
	Get(ctx context.Context, identifier string) (*models.TopList, error)
	Create(ctx context.Context, actor *models.User, req models.TopListRequest) (*models.TopList, error)
	Update(ctx context.Context, actor *models.User, id uint, req models.TopListRequest) (*models.TopList, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type topListService struct {
	topListRepo  repositories.TopListRepository
	platformRepo repositories.PlatformRepository
	activity     ActivityService
}

func NewTopListService(topListRepo repositories.TopListRepository, platformRepo repositories.PlatformRepository, activity ActivityService) TopListService {
	return &topListService{topListRepo: topListRepo, platformRepo: platformRepo, activity: activity}
}

func (s *topListService) List(ctx context.Context, params models.TopListListParams) ([]models.TopList, error) {
	params.Status = listStatus(params.Status)
	lists, err := s.topListRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if err := s.attachPlatforms(ctx, &lists[i]); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

func (s *topListService) Get(ctx context.Context, identifier string) (*models.TopList, error) {
	list, err := s.topListRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := s.attachPlatforms(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *topListService) Create(ctx context.Context, actor *models.User, req models.TopListRequest) (*models.TopList, error) {
	if err := requireNamed(req.Title, req.Slug, "Title and slug are required."); err != nil {
		return nil, err
	}

	list := &models.TopList{
		Title:       *req.Title,
		Slug:        *req.Slug,
		Description: req.Description,
		PlatformIDs: pq.Int64Array{},
		Status:      stringOr(req.Status, statusPublished),
		CreatedBy:   &actor.ID,
	}
	if req.PlatformIDs != nil {
		list.PlatformIDs = *req.PlatformIDs
	}
	if err := s.topListRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entityTopList, list.ID, list.Title))
	return list, nil
}

func (s *topListService) Update(ctx context.Context, actor *models.User, id uint, req models.TopListRequest) (*models.TopList, error) {
	list, err := s.topListRepo.Update(ctx, id, req.Fields(), actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entityTopList, list.ID, list.Title))
	return list, nil
}

func (s *topListService) Delete(ctx context.Context, actor *models.User, id uint) error {
	list, err := s.topListRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.topListRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionDelete, entityTopList, id, list.Title))
	return nil
}

func (s *topListService) attachPlatforms(ctx context.Context, list *models.TopList) error {
	platforms, err := s.platformRepo.ListByIDs(ctx, list.PlatformIDs)
	if err != nil {
		return err
	}
	list.Platforms = platforms
	return nil
}
