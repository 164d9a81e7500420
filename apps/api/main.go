package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go-inventory/apps/api/handler"
	"go-inventory/apps/api/model"
	"go-inventory/pkg/config"
	"go-inventory/pkg/database"
	"go-inventory/pkg/tracer"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	// .env 仅本地开发使用，不存在则忽略
	_ = godotenv.Load()

	c, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 环境变量适配
	if v := os.Getenv("SERVICE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Service.Port = p
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("OTEL_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}

	if c.Tracing.Endpoint != "" {
		tp, err := tracer.InitTracer(c.Service.Name, c.Tracing.Endpoint)
		if err != nil {
			log.Printf("Init tracer failed: %v", err)
		} else {
			defer func() { _ = tp.Shutdown(context.Background()) }()
		}
	}

	db, err := database.Init(c.Database)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	// 启动时建表，无迁移系统
	if err := model.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	r := gin.Default()
	if c.Tracing.Endpoint != "" {
		r.Use(otelgin.Middleware(c.Service.Name))
	}
	handler.Register(r, db)

	addr := fmt.Sprintf(":%d", c.Service.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	log.Printf("Inventory API listening on %s", addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
