package services

import (
	"context"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entityNews = "news"

type NewsService interface {
	List(ctx context.Context, params models.NewsListParams) ([]models.News, error)
	Get(ctx context.Context, identifier string) (*models.News, error)
	Create(ctx context.Context, actor *models.User, req models.NewsRequest) (*models.News, error)
	Update(ctx context.Context, actor *models.User, id uint, req models.NewsRequest) (*models.News, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type newsService struct {
	newsRepo repositories.NewsRepository
	activity ActivityService
}

func NewNewsService(newsRepo repositories.NewsRepository, activity ActivityService) NewsService {
	return &newsService{newsRepo: newsRepo, activity: activity}
}

func (s *newsService) List(ctx context.Context, params models.NewsListParams) ([]models.News, error) {
	params.Status = listStatus(params.Status)
	return s.newsRepo.List(ctx, params)
}

func (s *newsService) Get(ctx context.Context, identifier string) (*models.News, error) {
	return s.newsRepo.GetByIdentifier(ctx, identifier)
}

func (s *newsService) Create(ctx context.Context, actor *models.User, req models.NewsRequest) (*models.News, error) {
	if err := requireNamed(req.Title, req.Slug, "Title and slug are required."); err != nil {
		return nil, err
	}

	authorName := actor.DisplayName()
	news := &models.News{
		Title:         *req.Title,
		Slug:          *req.Slug,
		Type:          req.Type,
		PlatformID:    req.PlatformID,
		Content:       req.Content,
		ContentBlocks: blocksOrEmpty(req.ContentBlocks),
		Status:        stringOr(req.Status, statusDraft),
		AuthorID:      &actor.ID,
		AuthorName:    &authorName,
		CreatedBy:     &actor.ID,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entityNews, news.ID, news.Title))
	// Reload so the joined platform columns are filled in.
	return s.newsRepo.GetByID(ctx, news.ID)
}

func (s *newsService) Update(ctx context.Context, actor *models.User, id uint, req models.NewsRequest) (*models.News, error) {
	news, err := s.newsRepo.Update(ctx, id, req.Fields(), actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entityNews, news.ID, news.Title))
	return news, nil
}

func (s *newsService) Delete(ctx context.Context, actor *models.User, id uint) error {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionDelete, entityNews, id, news.Title))
	return nil
}
