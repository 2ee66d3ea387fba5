//go:build integration
// +build integration

package tests

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	dbadapter "github.com/adarshtmg2060/todo-app/internal/adapter/db"
	"github.com/adarshtmg2060/todo-app/internal/config"
)

type IntegrationSuiteBase struct {
	suite.Suite

	DB     *gorm.DB
	dbPath string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	dir, err := os.MkdirTemp("", "todo-integration-*")
	s.Require().NoError(err)
	s.dbPath = filepath.Join(dir, "todos_test.db")

	db, err := dbadapter.ConnectDB(&config.Config{SqlitePath: s.dbPath})
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		sqlDB, err := s.DB.DB()
		s.Require().NoError(err)
		s.Require().NoError(sqlDB.Close())
	}

	// Drop the throwaway database to keep the environment clean.
	if s.dbPath != "" {
		s.Require().NoError(os.RemoveAll(filepath.Dir(s.dbPath)))
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	s.Require().NoError(s.DB.Exec("DELETE FROM todos").Error)
}
