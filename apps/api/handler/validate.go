package handler

import (
	"errors"
	"fmt"
	"time"

	"go-inventory/apps/api/model"
)

// 字段校验。失败文案保持历史接口的原样，统一以 404 返回，
// 见各 handler 调用处。

const maxPageLimit = 100

func validateName(field, value string) error {
	if len(value) <= 0 {
		return fmt.Errorf("%s must not be empty.", field)
	}
	return nil
}

func validateStockQuantity(quantity int) error {
	if quantity < 0 {
		return errors.New("stock_quantity must be zero or more.")
	}
	return nil
}

func validateQuantitySold(quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity_sold must be more than zero.")
	}
	return nil
}

func validateSalePrice(price float64) error {
	if price < 0 {
		return errors.New("sale_price must be zero or more.")
	}
	return nil
}

func validateSaleDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("sale_date is not valid.")
	}
	return nil
}

// validateLimit 分页越界在执行查询前直接拒绝
func validateLimit(limit int) error {
	if limit <= 0 || limit > maxPageLimit {
		return errors.New("limit must be between 1 and 100.")
	}
	return nil
}

// validatePairRefs 校验销售/库存行引用的商品和平台都存在
func (h *Handler) validatePairRefs(productID, platformID uint) error {
	if !h.refExists(&model.Product{}, "product_id", productID) {
		return errors.New("product_id is not valid.")
	}
	if !h.refExists(&model.Platform{}, "platform_id", platformID) {
		return errors.New("platform_id is not valid.")
	}
	return nil
}

// validateProductRefs 分类和品牌都必须指向已存在的行。
// 表结构上两列允许为空，但接口沿用历史行为：缺失即拒绝。
func (h *Handler) validateProductRefs(categoryID, brandID *uint) error {
	if categoryID == nil || !h.refExists(&model.Category{}, "category_id", *categoryID) {
		return errors.New("category_id is not valid.")
	}
	if brandID == nil || !h.refExists(&model.Brand{}, "brand_id", *brandID) {
		return errors.New("brand_id is not valid.")
	}
	return nil
}
