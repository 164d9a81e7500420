package model

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类
type Category struct {
	CategoryID   uint   `gorm:"primaryKey" json:"category_id"`
	CategoryName string `gorm:"type:varchar(100);not null" json:"category_name"`

	// 删除分类时级联删除其下商品
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// Brand 品牌
type Brand struct {
	BrandID   uint   `gorm:"primaryKey" json:"brand_id"`
	BrandName string `gorm:"type:varchar(100);not null" json:"brand_name"`

	Products []Product `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Brand) TableName() string {
	return "brands"
}

// Platform 销售平台 (如各电商渠道)
type Platform struct {
	PlatformID   uint   `gorm:"primaryKey" json:"platform_id"`
	PlatformName string `gorm:"type:varchar(100);not null" json:"platform_name"`

	Sales     []Sale      `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
	Inventory []Inventory `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Platform) TableName() string {
	return "platforms"
}

// Product 商品
// 注意：category_id / brand_id 在表结构上允许为空，
// 但创建和更新接口要求两者都指向已存在的行，见 handler/product.go
type Product struct {
	ProductID   uint   `gorm:"primaryKey" json:"product_id"`
	ProductName string `gorm:"type:varchar(100);not null" json:"product_name"`
	CategoryID  *uint  `gorm:"index" json:"category_id"`
	BrandID     *uint  `gorm:"index" json:"brand_id"`

	Sales     []Sale      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Inventory []Inventory `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Sale 一笔销售记录
type Sale struct {
	SaleID       uint    `gorm:"primaryKey" json:"sale_id"`
	ProductID    uint    `gorm:"index" json:"product_id"`
	PlatformID   uint    `gorm:"index" json:"platform_id"`
	SaleDate     string  `gorm:"type:date" json:"sale_date"` // YYYY-MM-DD
	QuantitySold int     `json:"quantity_sold"`
	SalePrice    float64 `gorm:"type:decimal(10,2)" json:"sale_price"`
}

func (Sale) TableName() string {
	return "sales"
}

// Inventory 单个商品在单个平台上的库存
// (product_id, platform_id) 组合唯一，由复合唯一索引保证
type Inventory struct {
	InventoryID   uint      `gorm:"primaryKey" json:"inventory_id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_inventory_product_platform" json:"product_id"`
	PlatformID    uint      `gorm:"uniqueIndex:idx_inventory_product_platform" json:"platform_id"`
	StockQuantity int       `json:"stock_quantity"`
	LastUpdated   time.Time `json:"last_updated"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// Migrate 建表，启动时自动执行，父表在前保证外键可建
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Category{},
		&Brand{},
		&Platform{},
		&Product{},
		&Sale{},
		&Inventory{},
	)
}
