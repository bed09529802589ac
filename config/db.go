package config

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// OpenDB connects to DATABASE_URL with the given driver ("mysql" or
// "postgres") and applies pool settings.
func OpenDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if driver == "mysql" {
		dsn = withMySQLParams(dsn)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded goose migrations for the driver's dialect.
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(db.DriverName()); err != nil {
		return err
	}
	return goose.Up(db.DB, "migrations/"+db.DriverName())
}

// withMySQLParams adds the connection parameters the content store relies on
// unless the DSN already sets them.
func withMySQLParams(dsn string) string {
	params := []string{"parseTime=true", "loc=UTC", "timeout=10s", "readTimeout=30s", "writeTimeout=30s"}

	var missing []string
	for _, p := range params {
		name := p[:strings.Index(p, "=")+1]
		if !strings.Contains(dsn, name) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
		if strings.HasSuffix(dsn, "?") || strings.HasSuffix(dsn, "&") {
			sep = ""
		}
	}
	return dsn + sep + strings.Join(missing, "&")
}
