package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	activityService     services.ActivityService
	Helper              *helper.HTTPHelper
}

func NewNotificationHandler(notificationService services.NotificationService, activityService services.ActivityService, h *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		activityService:     activityService,
		Helper:              h,
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	var params models.NotificationListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	inbox, err := h.notificationService.Inbox(c.Request.Context(), middleware.CurrentUser(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notifications loaded", inbox)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notification marked as read", h.Helper.EmptyJsonMap())
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "All notifications marked as read", gin.H{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notification deleted", h.Helper.EmptyJsonMap())
}

// GetActivity shows superadmins every entry and everyone else their own.
func (h *NotificationHandler) GetActivity(c *gin.Context) {
	var params models.ActivityListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	entries, err := h.activityService.List(c.Request.Context(), middleware.CurrentUser(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Activity loaded", entries)
}
