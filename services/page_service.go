package services

import (
	"context"
	"errors"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const entityPage = "page"

type PageService interface {
	List(ctx context.Context, params models.PageListParams) ([]models.Page, error)
	Get(ctx context.Context, identifier string) (*models.Page, error)
	Create(ctx context.Context, actor *models.User, req models.PageRequest) (*models.Page, error)
	Update(ctx context.Context, actor *models.User, id uint, req models.PageRequest) (*models.Page, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
	// EnsureDefault creates the page unless its slug is taken. Used when seeding.
	EnsureDefault(ctx context.Context, page *models.Page) error
}

type pageService struct {
	pageRepo repositories.PageRepository
	activity ActivityService
}

func NewPageService(pageRepo repositories.PageRepository, activity ActivityService) PageService {
	return &pageService{pageRepo: pageRepo, activity: activity}
}

// List returns every status unless one is asked for.
func (s *pageService) List(ctx context.Context, params models.PageListParams) ([]models.Page, error) {
	return s.pageRepo.List(ctx, params)
}

func (s *pageService) Get(ctx context.Context, identifier string) (*models.Page, error) {
	return s.pageRepo.GetByIdentifier(ctx, identifier)
}

func (s *pageService) Create(ctx context.Context, actor *models.User, req models.PageRequest) (*models.Page, error) {
	if err := requireNamed(req.Title, req.Slug, "Title and slug are required."); err != nil {
		return nil, err
	}

	page := &models.Page{
		Title:           *req.Title,
		Slug:            *req.Slug,
		Content:         req.Content,
		ContentBlocks:   blocksOrEmpty(req.ContentBlocks),
		MetaDescription: req.MetaDescription,
		Status:          stringOr(req.Status, statusPublished),
		CreatedBy:       &actor.ID,
	}
	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionCreate, entityPage, page.ID, page.Title))
	return page, nil
}

func (s *pageService) Update(ctx context.Context, actor *models.User, id uint, req models.PageRequest) (*models.Page, error) {
	page, err := s.pageRepo.Update(ctx, id, req.Fields(), actor.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionUpdate, entityPage, page.ID, page.Title))
	return page, nil
}

func (s *pageService) Delete(ctx context.Context, actor *models.User, id uint) error {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, contentActivity(actor, ActionDelete, entityPage, id, page.Title))
	return nil
}

func (s *pageService) EnsureDefault(ctx context.Context, page *models.Page) error {
	if _, err := s.pageRepo.GetByIdentifier(ctx, page.Slug); err == nil {
		return nil
	}
	err := s.pageRepo.Create(ctx, page)
	var conflict models.ErrorConflict
	if errors.As(err, &conflict) {
		return nil
	}
	return err
}
