package handler

import (
	"errors"
	"net/http"
	"time"

	"go-inventory/apps/api/model"
	"go-inventory/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListInventory 库存列表，库存量支持闭区间过滤
func (h *Handler) ListInventory(ctx *gin.Context) {
	var query InventoryListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateLimit(query.Limit); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	tx := h.db.Model(&model.Inventory{})
	if query.ProductID != nil {
		tx = tx.Where("product_id = ?", *query.ProductID)
	}
	if query.PlatformID != nil {
		tx = tx.Where("platform_id = ?", *query.PlatformID)
	}
	if query.MinStockQuantity != nil {
		tx = tx.Where("stock_quantity >= ?", *query.MinStockQuantity)
	}
	if query.MaxStockQuantity != nil {
		tx = tx.Where("stock_quantity <= ?", *query.MaxStockQuantity)
	}

	var items []model.Inventory
	if err := tx.Offset(query.Offset).Limit(query.Limit).Find(&items).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(ctx, items)
}

// GetInventory 按 ID 查询库存行
func (h *Handler) GetInventory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "id must be an integer.")
		return
	}

	var inv model.Inventory
	if err := h.db.First(&inv, id).Error; err != nil {
		response.Error(ctx, http.StatusNotFound, "inventory_id is not valid.")
		return
	}
	response.Success(ctx, inv)
}

// UpsertInventory 按 (product_id, platform_id) 新增或覆盖库存。
// 已存在则覆盖 stock_quantity 并刷新 last_updated，不存在则插入，
// 两个分支外还有复合唯一索引兜底，避免并发写出重复行。
func (h *Handler) UpsertInventory(ctx *gin.Context) {
	var req InventoryUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validatePairRefs(req.ProductID, req.PlatformID); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}
	if err := validateStockQuantity(req.StockQuantity); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var inv model.Inventory
	err := h.db.Where("product_id = ? AND platform_id = ?", req.ProductID, req.PlatformID).
		First(&inv).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		inv = model.Inventory{
			ProductID:     req.ProductID,
			PlatformID:    req.PlatformID,
			StockQuantity: req.StockQuantity,
			LastUpdated:   time.Now(),
		}
		if err := h.db.Create(&inv).Error; err != nil {
			response.Error(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	case err != nil:
		response.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	default:
		inv.StockQuantity = req.StockQuantity
		inv.LastUpdated = time.Now()
		if err := h.db.Save(&inv).Error; err != nil {
			response.Error(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	}
	response.Success(ctx, inv)
}

// DeleteInventory 按 (product_id, platform_id) 删除库存行，
// 行不存在时不报错（历史行为）
func (h *Handler) DeleteInventory(ctx *gin.Context) {
	var req InventoryDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validatePairRefs(req.ProductID, req.PlatformID); err != nil {
		response.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	var inv model.Inventory
	err := h.db.Where("product_id = ? AND platform_id = ?", req.ProductID, req.PlatformID).
		First(&inv).Error
	if err == nil {
		if err := h.db.Delete(&inv).Error; err != nil {
			response.Error(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	}
	response.NoContent(ctx)
}
