package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"giving-tree-admin/internal/models"
)

type Config struct {
	DSN      string
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

func (c Config) dsn() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.DbName, c.Password, c.SslMode)
}

// ConnectDB opens the database and migrates the audit table.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.DB().Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := db.AutoMigrate(&models.Submission{}).Error; err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
