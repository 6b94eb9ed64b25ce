package config

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database described by the environment.
//
//	DB_DRIVER      "sqlite" (default) or "mysql"
//	DB_URL         DSN; defaults to file:restaurants.db for sqlite
//	DB_AUTH_TOKEN  optional token appended to remote sqlite URLs
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	dsn := os.Getenv("DB_URL")

	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = "file:restaurants.db"
		}
		if token := os.Getenv("DB_AUTH_TOKEN"); token != "" && !strings.HasPrefix(dsn, "file:") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn = dsn + sep + "authToken=" + token
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("DB_URL is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}
