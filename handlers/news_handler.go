package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type NewsHandler struct {
	newsService services.NewsService
	Helper      *helper.HTTPHelper
}

func NewNewsHandler(newsService services.NewsService, h *helper.HTTPHelper) *NewsHandler {
	return &NewsHandler{newsService: newsService, Helper: h}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	var params models.NewsListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	newsItems, err := h.newsService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "News loaded", newsItems)
}

func (h *NewsHandler) GetNewsItem(c *gin.Context) {
	item, err := h.newsService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "News loaded", item)
}

func (h *NewsHandler) CreateNewsItem(c *gin.Context) {
	var req models.NewsRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	item, err := h.newsService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "News created", item)
}

func (h *NewsHandler) UpdateNewsItem(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.NewsRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	item, err := h.newsService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "News updated", item)
}

func (h *NewsHandler) DeleteNewsItem(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "News deleted successfully", h.Helper.EmptyJsonMap())
}
