package handler

import (
	"net/http"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListBrands 全部品牌
func (h *Handler) ListBrands(ctx *gin.Context) {
	var brands []model.Brand
	if err := h.db.Find(&brands).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, brands)
}

// GetBrand 按 ID 查询品牌
func (h *Handler) GetBrand(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var brand model.Brand
	if err := h.db.First(&brand, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "brand_id is not valid.")
		return
	}
	response.Success(ctx, brand)
}

// CreateBrand 新增品牌
func (h *Handler) CreateBrand(ctx *gin.Context) {
	var req BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("brand_name", req.BrandName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	brand := model.Brand{BrandName: req.BrandName}
	if err := h.db.Create(&brand).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, brand)
}

// UpdateBrand 更新品牌名称
func (h *Handler) UpdateBrand(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}
	var req BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateName("brand_name", req.BrandName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var brand model.Brand
	if err := h.db.First(&brand, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "brand_id is not valid.")
		return
	}
	brand.BrandName = req.BrandName
	if err := h.db.Save(&brand).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, brand)
}

// DeleteBrand 删除品牌，其下商品由外键级联删除
func (h *Handler) DeleteBrand(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var brand model.Brand
	if err := h.db.First(&brand, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "brand_id is not valid.")
		return
	}
	if err := h.db.Delete(&brand).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.NoContent(ctx)
}
