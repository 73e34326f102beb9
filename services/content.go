package services

import "stakegulf-cms/models"

const (
	statusDraft     = "draft"
	statusPublished = "published"
)

func contentActivity(actor *models.User, action, entityType string, id uint, title string) ActivityInput {
	return ActivityInput{
		ActorID:       actor.ID,
		ActorUsername: actor.Username,
		Action:        action,
		EntityType:    entityType,
		EntityID:      id,
		EntityTitle:   title,
	}
}

func requireNamed(name, slug *string, message string) error {
	if name == nil || *name == "" || slug == nil || *slug == "" {
		return models.ErrorBadRequest{Message: message}
	}
	return nil
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func blocksOrEmpty(v *models.ContentBlocks) models.ContentBlocks {
	if v == nil || *v == nil {
		return models.ContentBlocks{}
	}
	return *v
}

func listStatus(status string) string {
	if status == "" {
		return statusPublished
	}
	return status
}
