package handler

import (
	"net/http"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListSales 销售记录列表，sale_date 为精确匹配
func (h *Handler) ListSales(ctx *gin.Context) {
	var query SaleListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateLimit(query.Limit); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	tx := h.db.Model(&model.Sale{})
	if query.ProductID != nil {
		tx = tx.Where("product_id = ?", *query.ProductID)
	}
	if query.PlatformID != nil {
		tx = tx.Where("platform_id = ?", *query.PlatformID)
	}
	if query.SaleDate != nil {
		tx = tx.Where("sale_date = ?", *query.SaleDate)
	}

	var sales []model.Sale
	if err := tx.Offset(query.Offset).Limit(query.Limit).Find(&sales).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, sales)
}

// GetSale 按 ID 查询销售记录
func (h *Handler) GetSale(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var sale model.Sale
	if err := h.db.First(&sale, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "sale_id is not valid.")
		return
	}
	response.Success(ctx, sale)
}

// CreateSale 新增销售记录
func (h *Handler) CreateSale(ctx *gin.Context) {
	var req SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validateSaleFields(&req); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	sale := model.Sale{
		ProductID:    req.ProductID,
		PlatformID:   req.PlatformID,
		SaleDate:     req.SaleDate,
		QuantitySold: req.QuantitySold,
		SalePrice:    req.SalePrice,
	}
	if err := h.db.Create(&sale).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, sale)
}

// UpdateSale 整体替换销售记录的可变字段
func (h *Handler) UpdateSale(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}
	var req SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validateSaleFields(&req); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var sale model.Sale
	if err := h.db.First(&sale, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "sale_id is not valid.")
		return
	}
	sale.ProductID = req.ProductID
	sale.PlatformID = req.PlatformID
	sale.SaleDate = req.SaleDate
	sale.QuantitySold = req.QuantitySold
	sale.SalePrice = req.SalePrice
	if err := h.db.Save(&sale).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, sale)
}

// DeleteSale 删除销售记录
func (h *Handler) DeleteSale(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var sale model.Sale
	if err := h.db.First(&sale, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "sale_id is not valid.")
		return
	}
	if err := h.db.Delete(&sale).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.NoContent(ctx)
}

// validateSaleFields 引用检查在前，字段规则在后，顺序即返回顺序
func (h *Handler) validateSaleFields(req *SaleRequest) error {
	if err := h.validatePairRefs(req.ProductID, req.PlatformID); err != nil {
		return err
	}
	if err := validateSaleDate(req.SaleDate); err != nil {
		return err
	}
	if err := validateQuantitySold(req.QuantitySold); err != nil {
		return err
	}
	return validateSalePrice(req.SalePrice)
}
