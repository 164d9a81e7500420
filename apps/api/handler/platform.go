package handler

import (
	"net/http"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListPlatforms 全部平台
func (h *Handler) ListPlatforms(ctx *gin.Context) {
	var platforms []model.Platform
	if err := h.db.Find(&platforms).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, platforms)
}

// GetPlatform 按 ID 查询平台
func (h *Handler) GetPlatform(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var platform model.Platform
	if err := h.db.First(&platform, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "platform_id is not valid.")
		return
	}
	response.Success(ctx, platform)
}

// CreatePlatform 新增平台
func (h *Handler) CreatePlatform(ctx *gin.Context) {
	var req PlatformRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("platform_name", req.PlatformName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	platform := model.Platform{PlatformName: req.PlatformName}
	if err := h.db.Create(&platform).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, platform)
}

// UpdatePlatform 更新平台名称
func (h *Handler) UpdatePlatform(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}
	var req PlatformRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("platform_name", req.PlatformName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var platform model.Platform
	if err := h.db.First(&platform, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "platform_id is not valid.")
		return
	}
	platform.PlatformName = req.PlatformName
	if err := h.db.Save(&platform).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, platform)
}

// DeletePlatform 删除平台，其销售和库存记录由外键级联删除
func (h *Handler) DeletePlatform(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var platform model.Platform
	if err := h.db.First(&platform, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "platform_id is not valid.")
		return
	}
	if err := h.db.Delete(&platform).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.NoContent(ctx)
}
