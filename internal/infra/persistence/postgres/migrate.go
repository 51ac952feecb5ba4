package postgres

import (
	"context"
	"database/sql"
	"sync"

	"pos/internal/errors"
	"pos/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply database migrations")
	}

	return nil
}
