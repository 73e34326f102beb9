package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type GuideHandler struct {
	guideService services.GuideService
	Helper       *helper.HTTPHelper
}

func NewGuideHandler(guideService services.GuideService, h *helper.HTTPHelper) *GuideHandler {
	return &GuideHandler{guideService: guideService, Helper: h}
}

func (h *GuideHandler) GetGuides(c *gin.Context) {
	var params models.GuideListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	guides, err := h.guideService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Guides loaded", guides)
}

// GetGuide accepts a numeric id or a slug.
func (h *GuideHandler) GetGuide(c *gin.Context) {
	guide, err := h.guideService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Guide loaded", guide)
}

func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var req models.GuideRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	guide, err := h.guideService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Guide created", guide)
}

func (h *GuideHandler) UpdateGuide(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.GuideRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	guide, err := h.guideService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Guide updated", guide)
}

func (h *GuideHandler) DeleteGuide(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.guideService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Guide deleted successfully", h.Helper.EmptyJsonMap())
}
