package postgres_test

import (
	"database/sql"
	"testing"

	"backoffice/internal/specialist"
	"backoffice/pkg/storage/postgres"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()

	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	versions := migrator.AllVersions()
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: versions[len(versions)-1].Version,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := t.Context()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	args := specialist.SweepOrphansArgs{Keys: []string{"a.png", "b.mp4"}}
	inserted, err := tx.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t, tx.(*postgres.PgSQL).DB.(*sql.Tx), &specialist.SweepOrphansArgs{}, nil)
	require.Equal(t, args.Keys, job.Args.Keys)
}

func TestPgSQL_AddJob_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := t.Context()
	inserted, err := pg.AddJob(ctx, specialist.SweepOrphansArgs{Keys: []string{"c.jpg"}}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t, riverdatabasesql.New(pg.DB.(*sql.DB)), &specialist.SweepOrphansArgs{}, nil)
}
