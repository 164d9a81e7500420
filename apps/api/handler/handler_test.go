package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inventory/apps/api/model"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest 每个用例一个独立的内存库
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库必须限制为单连接，否则连接池里每个连接是一个独立的库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, model.Migrate(db))

	r := gin.New()
	Register(r, db)
	return r, db
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func responseMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Msg
}

// 下面是造数据的快捷方式，全部走 HTTP 接口

func mustCreateCategory(t *testing.T, r *gin.Engine, name string) model.Category {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/category/", CategoryRequest{CategoryName: name})
	require.Equal(t, http.StatusOK, w.Code)
	var c model.Category
	decodeData(t, w, &c)
	return c
}

func mustCreateBrand(t *testing.T, r *gin.Engine, name string) model.Brand {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/brand/", BrandRequest{BrandName: name})
	require.Equal(t, http.StatusOK, w.Code)
	var b model.Brand
	decodeData(t, w, &b)
	return b
}

func mustCreatePlatform(t *testing.T, r *gin.Engine, name string) model.Platform {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/platform/", PlatformRequest{PlatformName: name})
	require.Equal(t, http.StatusOK, w.Code)
	var p model.Platform
	decodeData(t, w, &p)
	return p
}

func mustCreateProduct(t *testing.T, r *gin.Engine, name string, categoryID, brandID uint) model.Product {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/product/", ProductRequest{
		ProductName: name,
		CategoryID:  &categoryID,
		BrandID:     &brandID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var p model.Product
	decodeData(t, w, &p)
	return p
}
