package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type PlatformHandler struct {
	platformService services.PlatformService
	Helper          *helper.HTTPHelper
}

func NewPlatformHandler(platformService services.PlatformService, h *helper.HTTPHelper) *PlatformHandler {
	return &PlatformHandler{platformService: platformService, Helper: h}
}

func (h *PlatformHandler) GetPlatforms(c *gin.Context) {
	var params models.PlatformListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	platforms, err := h.platformService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Platforms loaded", platforms)
}

// GetPlatform accepts a numeric id or a slug.
func (h *PlatformHandler) GetPlatform(c *gin.Context) {
	platform, err := h.platformService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Platform loaded", platform)
}

func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req models.PlatformRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	platform, err := h.platformService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Platform created", platform)
}

func (h *PlatformHandler) UpdatePlatform(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.PlatformRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	platform, err := h.platformService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Platform updated", platform)
}

func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.platformService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Platform deleted successfully", h.Helper.EmptyJsonMap())
}
