package handler

// 请求模型。列表查询里未传的字段视为不加限制，
// 指针为 nil 表示未传。

type CategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type BrandRequest struct {
	BrandName string `json:"brand_name"`
}

type PlatformRequest struct {
	PlatformName string `json:"platform_name"`
}

type ProductRequest struct {
	ProductName string `json:"product_name"`
	CategoryID  *uint  `json:"category_id"`
	BrandID     *uint  `json:"brand_id"`
}

type ProductListQuery struct {
	ProductID   *uint   `form:"product_id"`
	ProductName *string `form:"product_name"` // 子串匹配
	CategoryID  *uint   `form:"category_id"`
	BrandID     *uint   `form:"brand_id"`
	Offset      int     `form:"offset"`
	Limit       int     `form:"limit,default=100"`
}

type SaleRequest struct {
	ProductID    uint    `json:"product_id"`
	PlatformID   uint    `json:"platform_id"`
	SaleDate     string  `json:"sale_date"` // YYYY-MM-DD
	QuantitySold int     `json:"quantity_sold"`
	SalePrice    float64 `json:"sale_price"`
}

type SaleListQuery struct {
	ProductID  *uint   `form:"product_id"`
	PlatformID *uint   `form:"platform_id"`
	SaleDate   *string `form:"sale_date"` // 精确匹配
	Offset     int     `form:"offset"`
	Limit      int     `form:"limit,default=100"`
}

type InventoryUpsertRequest struct {
	ProductID     uint `json:"product_id"`
	PlatformID    uint `json:"platform_id"`
	StockQuantity int  `json:"stock_quantity"`
}

type InventoryDeleteRequest struct {
	ProductID  uint `json:"product_id"`
	PlatformID uint `json:"platform_id"`
}

type InventoryListQuery struct {
	ProductID        *uint `form:"product_id"`
	PlatformID       *uint `form:"platform_id"`
	MinStockQuantity *int  `form:"min_stock_quantity"` // 闭区间下界
	MaxStockQuantity *int  `form:"max_stock_quantity"` // 闭区间上界
	Offset           int   `form:"offset"`
	Limit            int   `form:"limit,default=100"`
}
