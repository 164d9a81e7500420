package handler

import (
	"fmt"
	"net/http"
	"testing"

	"go-inventory/apps/api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	r, _ := setupTest(t)

	created := mustCreateCategory(t, r, "Toys")
	assert.Equal(t, uint(1), created.CategoryID)
	assert.Equal(t, "Toys", created.CategoryName)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/category/%d", created.CategoryID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Category
	decodeData(t, w, &got)
	assert.Equal(t, created, got)

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/category/%d", created.CategoryID),
		CategoryRequest{CategoryName: "Games"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &got)
	assert.Equal(t, "Games", got.CategoryName)

	mustCreateCategory(t, r, "Books")
	w = doRequest(t, r, http.MethodGet, "/category/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []model.Category
	decodeData(t, w, &all)
	assert.Len(t, all, 2)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/category/%d", created.CategoryID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/category/%d", created.CategoryID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryValidation(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/category/", CategoryRequest{CategoryName: ""})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category_name must not be empty.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodGet, "/category/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category id is not valid.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodPut, "/category/99", CategoryRequest{CategoryName: "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category_id is not valid.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodDelete, "/category/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/category/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBrandCRUD(t *testing.T) {
	r, _ := setupTest(t)

	brand := mustCreateBrand(t, r, "Acme")

	w := doRequest(t, r, http.MethodPost, "/brand/", BrandRequest{BrandName: ""})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "brand_name must not be empty.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/brand/%d", brand.BrandID),
		BrandRequest{BrandName: "Acme Corp"})
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Brand
	decodeData(t, w, &got)
	assert.Equal(t, "Acme Corp", got.BrandName)

	w = doRequest(t, r, http.MethodGet, "/brand/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "brand_id is not valid.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/brand/%d", brand.BrandID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, http.MethodGet, "/brand/", nil)
	var all []model.Brand
	decodeData(t, w, &all)
	assert.Empty(t, all)
}

func TestPlatformCRUD(t *testing.T) {
	r, _ := setupTest(t)

	platform := mustCreatePlatform(t, r, "WebStore")

	w := doRequest(t, r, http.MethodPost, "/platform/", PlatformRequest{PlatformName: ""})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "platform_name must not be empty.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/platform/%d", platform.PlatformID),
		PlatformRequest{PlatformName: "Marketplace"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/platform/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "platform_id is not valid.", responseMsg(t, w))

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/platform/%d", platform.PlatformID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// 删除分类要连带删掉商品，商品又连带删掉销售和库存
func TestDeleteCategoryCascades(t *testing.T) {
	r, db := setupTest(t)

	category := mustCreateCategory(t, r, "Toys")
	brand := mustCreateBrand(t, r, "Acme")
	platform := mustCreatePlatform(t, r, "WebStore")
	product := mustCreateProduct(t, r, "Robot", category.CategoryID, brand.BrandID)

	w := doRequest(t, r, http.MethodPost, "/sales/", SaleRequest{
		ProductID:    product.ProductID,
		PlatformID:   platform.PlatformID,
		SaleDate:     "2026-08-30",
		QuantitySold: 2,
		SalePrice:    19.99,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPost, "/inventory/", InventoryUpsertRequest{
		ProductID:     product.ProductID,
		PlatformID:    platform.PlatformID,
		StockQuantity: 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/category/%d", category.CategoryID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products, sales, items int64
	db.Model(&model.Product{}).Count(&products)
	db.Model(&model.Sale{}).Count(&sales)
	db.Model(&model.Inventory{}).Count(&items)
	assert.Zero(t, products)
	assert.Zero(t, sales)
	assert.Zero(t, items)
}
