package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler 持有请求范围内使用的数据库句柄
type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Register 挂载全部路由
func Register(r *gin.Engine, db *gorm.DB) {
	h := New(db)

	category := r.Group("/category")
	{
		category.GET("/", h.ListCategories)
		category.GET("/:id", h.GetCategory)
		category.POST("/", h.CreateCategory)
		category.PUT("/:id", h.UpdateCategory)
		category.DELETE("/:id", h.DeleteCategory)
	}

	brand := r.Group("/brand")
	{
		brand.GET("/", h.ListBrands)
		brand.GET("/:id", h.GetBrand)
		brand.POST("/", h.CreateBrand)
		brand.PUT("/:id", h.UpdateBrand)
		brand.DELETE("/:id", h.DeleteBrand)
	}

	platform := r.Group("/platform")
	{
		platform.GET("/", h.ListPlatforms)
		platform.GET("/:id", h.GetPlatform)
		platform.POST("/", h.CreatePlatform)
		platform.PUT("/:id", h.UpdatePlatform)
		platform.DELETE("/:id", h.DeletePlatform)
	}

	product := r.Group("/product")
	{
		product.GET("/", h.ListProducts)
		product.GET("/:id", h.GetProduct)
		product.POST("/", h.CreateProduct)
		product.PUT("/:id", h.UpdateProduct)
		product.DELETE("/:id", h.DeleteProduct)
	}

	// 历史路径：列表/新增挂在 /sales/ 下，单条操作挂在 /sale/:id 下
	sales := r.Group("/sales")
	{
		sales.GET("/", h.ListSales)
		sales.POST("/", h.CreateSale)
	}
	sale := r.Group("/sale")
	{
		sale.GET("/:id", h.GetSale)
		sale.PUT("/:id", h.UpdateSale)
		sale.DELETE("/:id", h.DeleteSale)
	}

	inventory := r.Group("/inventory")
	{
		inventory.GET("/", h.ListInventory)
		inventory.GET("/:id", h.GetInventory)
		inventory.POST("/", h.UpsertInventory)
		// 删除按 (product_id, platform_id) 定位，主键在请求体里
		inventory.DELETE("/", h.DeleteInventory)
	}
}

// refExists 引用完整性检查：被引用主键必须恰好命中一行
func (h *Handler) refExists(table interface{}, column string, id uint) bool {
	var count int64
	h.db.Model(table).Where(fmt.Sprintf("%s = ?", column), id).Count(&count)
	return count == 1
}

// parseID 解析路径参数中的整数主键
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
