package handlers

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type SettingHandler struct {
	settingService services.SettingService
	Helper         *helper.HTTPHelper
}

func NewSettingHandler(settingService services.SettingService, h *helper.HTTPHelper) *SettingHandler {
	return &SettingHandler{settingService: settingService, Helper: h}
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingService.Map(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Settings loaded", settings)
}

func (h *SettingHandler) GetFonts(c *gin.Context) {
	h.Helper.SendSuccess(c, "Fonts loaded", h.settingService.Fonts())
}

func (h *SettingHandler) GetAllSettings(c *gin.Context) {
	settings, err := h.settingService.All(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Settings loaded", settings)
}

func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	var req models.UpdateSettingRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	setting, err := h.settingService.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("key"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Setting updated", setting)
}

func (h *SettingHandler) CreateSetting(c *gin.Context) {
	var req models.CreateSettingRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	setting, err := h.settingService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Setting created", setting)
}
