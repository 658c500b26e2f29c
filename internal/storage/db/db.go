package db

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the SQL backend selected by cfg.Driver, checks the connection
// and applies the embedded migrations.
func InitDB(cfg config.StorageConfig) (*sqlx.DB, error) {
	var (
		driver  string
		dialect string
		dsn     string
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		conn := cfg.Postgres.Conn
		driver, dialect = "postgres", "postgres"
		dsn = fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			conn.Host, conn.Port, conn.Name, conn.User, conn.Password, conn.SSL)
	case config.DriverSQLite:
		driver, dialect = "sqlite3", "sqlite3"
		dsn = cfg.SQLite.Path
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if cfg.Driver == config.DriverPostgres {
		db.SetMaxOpenConns(cfg.Postgres.Cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.Cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.Cfg.ConnMaxLifeTime)
		db.SetConnMaxIdleTime(cfg.Postgres.Cfg.ConnMaxIdleTime)
	} else {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := migrate(db, dialect); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *sqlx.DB, dialect string) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
