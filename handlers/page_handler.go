package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type PageHandler struct {
	pageService services.PageService
	Helper      *helper.HTTPHelper
}

func NewPageHandler(pageService services.PageService, h *helper.HTTPHelper) *PageHandler {
	return &PageHandler{pageService: pageService, Helper: h}
}

func (h *PageHandler) GetPages(c *gin.Context) {
	var params models.PageListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	pages, err := h.pageService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pages loaded", pages)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	page, err := h.pageService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Page loaded", page)
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	var req models.PageRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Page created", page)
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.PageRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	page, err := h.pageService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Page updated", page)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.pageService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Page deleted successfully", h.Helper.EmptyJsonMap())
}
