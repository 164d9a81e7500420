package handler

import (
	"net/http"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListCategories 全部分类
func (h *Handler) ListCategories(ctx *gin.Context) {
	var categories []model.Category
	if err := h.db.Find(&categories).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, categories)
}

// GetCategory 按 ID 查询分类
func (h *Handler) GetCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		// 历史文案，这里是 "category id" 而非 "category_id"
		response.Error(ctx, http.StatusNotFound, "category id is not valid.")
		return
	}
	response.Success(ctx, category)
}

// CreateCategory 新增分类
func (h *Handler) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("category_name", req.CategoryName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	category := model.Category{CategoryName: req.CategoryName}
	if err := h.db.Create(&category).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, category)
}

// UpdateCategory 更新分类名称
func (h *Handler) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("category_name", req.CategoryName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "category_id is not valid.")
		return
	}
	category.CategoryName = req.CategoryName
	if err := h.db.Save(&category).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, category)
}

// DeleteCategory 删除分类，其下商品由外键级联删除
func (h *Handler) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "category_id is not valid.")
		return
	}
	if err := h.db.Delete(&category).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.NoContent(ctx)
}
