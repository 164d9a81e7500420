package database

import (
	"fmt"
	"log"

	"go-inventory/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 初始化数据库连接，driver 支持 sqlite / mysql
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	switch cfg.Driver {
	case "sqlite":
		dsn := cfg.Dsn
		if dsn == "" {
			dsn = "inventory.db"
		}
		// 开启外键约束，否则 SQLite 不执行级联删除
		dialector = sqlite.Open(dsn + "?_pragma=foreign_keys(1)")
	case "mysql":
		dialector = mysql.Open(cfg.Dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// 配置 GORM 日志，开发模式下打印 SQL
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Printf("Database connected successfully (driver=%s)", cfg.Driver)
	return db, nil
}
