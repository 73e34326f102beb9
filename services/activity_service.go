package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/datatypes"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionPublish = "publish"
)

var pastTense = map[string]string{
	ActionCreate:  "created",
	ActionUpdate:  "updated",
	ActionDelete:  "deleted",
	ActionPublish: "published",
}

// PastTense maps a known action verb to its past tense; anything else is
// returned unchanged.
func PastTense(action string) string {
	if past, ok := pastTense[action]; ok {
		return past
	}
	return action
}

type ActivityInput struct {
	ActorID       uint
	ActorUsername string
	Action        string
	EntityType    string
	EntityID      uint
	EntityTitle   string
	Details       map[string]interface{}
}

// NotificationFor builds the notification a superadmin receives for in.
// Entity types are pluralised by appending "s".
func NotificationFor(in ActivityInput, recipientID uint) models.Notification {
	past := PastTense(in.Action)
	return models.Notification{
		UserID:  recipientID,
		Type:    in.Action,
		Title:   fmt.Sprintf("%s %s a %s", in.ActorUsername, past, in.EntityType),
		Message: fmt.Sprintf("\"%s\" was %s.", in.EntityTitle, past),
		Link:    fmt.Sprintf("/%ss/%d", in.EntityType, in.EntityID),
	}
}

// ActivityService writes the audit trail. Both entry points are best effort:
// failures are logged and never reach the caller, and the work runs detached
// from the request that triggered it.
type ActivityService interface {
	// Record appends an entry and notifies every superadmin except the actor.
	Record(ctx context.Context, in ActivityInput)
	// RecordLegacy appends an entry without notifying anyone. The username is
	// looked up and the title is taken from details["username"] or details["title"].
	RecordLegacy(ctx context.Context, userID uint, action, entityType string, entityID uint, details map[string]interface{})
	List(ctx context.Context, viewer *models.User, params models.ActivityListParams) ([]models.ActivityLogEntry, error)
	// Wait blocks until every dispatched write has finished.
	Wait()
}

type ActivityOption func(*activityService)

// WithSynchronousDispatch runs activity writes inline. Failures are still swallowed.
func WithSynchronousDispatch() ActivityOption {
	return func(s *activityService) { s.async = false }
}

type activityService struct {
	activityRepo     repositories.ActivityRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	log              *slog.Logger
	async            bool
	wg               sync.WaitGroup
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	log *slog.Logger,
	opts ...ActivityOption,
) ActivityService {
	s := &activityService{
		activityRepo:     activityRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		log:              log,
		async:            true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *activityService) Record(ctx context.Context, in ActivityInput) {
	s.dispatch(ctx, in.Action, in.EntityType, in.EntityID, func(ctx context.Context) error {
		return s.record(ctx, in)
	})
}

func (s *activityService) RecordLegacy(ctx context.Context, userID uint, action, entityType string, entityID uint, details map[string]interface{}) {
	s.dispatch(ctx, action, entityType, entityID, func(ctx context.Context) error {
		username := "Unknown"
		if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
			username = user.Username
		}

		entry, err := newEntry(userID, username, action, entityType, entityID, legacyTitle(details), details)
		if err != nil {
			return err
		}
		return s.activityRepo.Create(ctx, entry)
	})
}

func (s *activityService) List(ctx context.Context, viewer *models.User, params models.ActivityListParams) ([]models.ActivityLogEntry, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	var userID *uint
	if viewer.Role != models.RoleSuperadmin {
		userID = &viewer.ID
	}
	return s.activityRepo.List(ctx, userID, params.Limit, params.Offset)
}

func (s *activityService) Wait() {
	s.wg.Wait()
}

func (s *activityService) record(ctx context.Context, in ActivityInput) error {
	entry, err := newEntry(in.ActorID, in.ActorUsername, in.Action, in.EntityType, in.EntityID, in.EntityTitle, in.Details)
	if err != nil {
		return err
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}

	superadmins, err := s.userRepo.ListIDsByRole(ctx, models.RoleSuperadmin)
	if err != nil {
		return fmt.Errorf("load superadmins: %w", err)
	}

	for _, id := range superadmins {
		if id == in.ActorID {
			continue
		}
		notification := NotificationFor(in, id)
		if err := s.notificationRepo.Create(ctx, &notification); err != nil {
			return fmt.Errorf("notify user %d: %w", id, err)
		}
	}
	return nil
}

// dispatch detaches fn from the request's cancellation and logs its failure.
func (s *activityService) dispatch(ctx context.Context, action, entityType string, entityID uint, fn func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.ErrorContext(ctx, "activity logging panicked",
					"panic", r, "action", action, "entity_type", entityType, "entity_id", entityID)
			}
		}()
		if err := fn(ctx); err != nil {
			s.log.ErrorContext(ctx, "error logging activity",
				"error", err, "action", action, "entity_type", entityType, "entity_id", entityID)
		}
	}

	if !s.async {
		run()
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		run()
	}()
}

func newEntry(userID uint, username, action, entityType string, entityID uint, title string, details map[string]interface{}) (*models.ActivityLogEntry, error) {
	if details == nil {
		details = map[string]interface{}{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode activity details: %w", err)
	}

	actor := userID
	target := entityID
	return &models.ActivityLogEntry{
		UserID:      &actor,
		Username:    username,
		Action:      action,
		EntityType:  entityType,
		EntityID:    &target,
		EntityTitle: title,
		Details:     datatypes.JSON(raw),
	}, nil
}

func legacyTitle(details map[string]interface{}) string {
	for _, key := range []string{"username", "title"} {
		if v, ok := details[key].(string); ok && v != "" {
			return v
		}
	}
	return "N/A"
}
