package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type TopListHandler struct {
	topListService services.TopListService
	Helper         *helper.HTTPHelper
}

func NewTopListHandler(topListService services.TopListService, h *helper.HTTPHelper) *TopListHandler {
	return &TopListHandler{topListService: topListService, Helper: h}
}

func (h *TopListHandler) GetTopLists(c *gin.Context) {
	var params models.TopListListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	lists, err := h.topListService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Top lists loaded", lists)
}

// GetTopList accepts a numeric id or a slug.
func (h *TopListHandler) GetTopList(c *gin.Context) {
	list, err := h.topListService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Top list loaded", list)
}

func (h *TopListHandler) CreateTopList(c *gin.Context) {
	var req models.TopListRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	list, err := h.topListService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Top list created", list)
}

func (h *TopListHandler) UpdateTopList(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.TopListRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	list, err := h.topListService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Top list updated", list)
}

func (h *TopListHandler) DeleteTopList(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.topListService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Top list deleted successfully", h.Helper.EmptyJsonMap())
}
