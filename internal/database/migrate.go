package database

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/reclamegraag/examiner/schemas"
)

// goose keeps its dialect and filesystem in package state
var gooseMu sync.Mutex

// slogGooseLogger adapts the goose logger interface to slog
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Default().Info(fmt.Sprintf(format, v...), "component", "migrations")
}

// Fatalf does not exit, the error is returned by goose as well
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Default().Error(fmt.Sprintf(format, v...), "component", "migrations")
}

// Migrate applies every pending migration of the connection's dialect.
func Migrate(db *sqlx.DB) error {
	return migrate(db, schemas.Migrations)
}

func migrate(db *sqlx.DB, migrations fs.FS) error {
	dialect := db.DriverName()
	dir := "migrations/" + dialect
	if _, err := fs.Stat(migrations, dir); err != nil {
		return fmt.Errorf("no migrations for driver %q: %w", dialect, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose.SetDialect(%s) > %w", dialect, err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("goose.Up() > %w", err)
	}
	return nil
}
