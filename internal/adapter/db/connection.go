package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adarshtmg2060/todo-app/internal/config"
)

func ConnectDB(conf *config.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(conf.SqlitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&todoRow{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}
