package handler

import (
	"net/http"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表，未传的过滤条件不参与查询
func (h *Handler) ListProducts(ctx *gin.Context) {
	var query ProductListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateLimit(query.Limit); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	tx := h.db.Model(&model.Product{})
	if query.ProductID != nil {
		tx = tx.Where("product_id = ?", *query.ProductID)
	}
	if query.ProductName != nil {
		tx = tx.Where("product_name LIKE ?", "%"+*query.ProductName+"%")
	}
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}
	if query.BrandID != nil {
		tx = tx.Where("brand_id = ?", *query.BrandID)
	}

	var products []model.Product
	if err := tx.Offset(query.Offset).Limit(query.Limit).Find(&products).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, products)
}

// GetProduct 按 ID 查询商品
func (h *Handler) GetProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var product model.Product
	if err := h.db.First(&product, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "product_id is not valid.")
		return
	}
	response.Success(ctx, product)
}

// CreateProduct 新增商品，分类和品牌必须都已存在
func (h *Handler) CreateProduct(ctx *gin.Context) {
	var req ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validateProductRefs(req.CategoryID, req.BrandID); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}
	if err := validateName("product_name", req.ProductName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	product := model.Product{
		ProductName: req.ProductName,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}
	if err := h.db.Create(&product).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, product)
}

// UpdateProduct 整体替换商品的可变字段
func (h *Handler) UpdateProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}
	var req ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validateProductRefs(req.CategoryID, req.BrandID); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}
	if err := validateName("product_name", req.ProductName); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var product model.Product
	if err := h.db.First(&product, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "product_id is not valid.")
		return
	}
	product.ProductName = req.ProductName
	product.CategoryID = req.CategoryID
	product.BrandID = req.BrandID
	if err := h.db.Save(&product).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, product)
}

// DeleteProduct 删除商品，其销售和库存记录由外键级联删除
func (h *Handler) DeleteProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var product model.Product
	if err := h.db.First(&product, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "product_id is not valid.")
		return
	}
	if err := h.db.Delete(&product).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.NoContent(ctx)
}
