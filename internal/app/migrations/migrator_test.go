package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"002_policies.sql": {Data: []byte("ALTER TABLE profiles ENABLE ROW LEVEL SECURITY;")},
		"001_schema.sql":   {Data: []byte("CREATE TABLE profiles (id UUID PRIMARY KEY);")},
		"README.md":        {Data: []byte("not a migration")},
	}
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_schema.sql"))
	assert.Equal(t, "002", Version("sql/002_row_level_security.sql"))
}

func TestMigrator_Pending(t *testing.T) {
	m := NewMigrator(nil, testFiles(), zerolog.Nop())
	names, err := m.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_schema.sql", "002_policies.sql"}, names)
}

func TestMigrator_Migrate(t *testing.T) {
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`)
	recordQuery := regexp.QuoteMeta(`INSERT INTO schema_migrations`)

	t.Run("Should apply only unrecorded files in order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(existsQuery).WithArgs("001").WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(existsQuery).WithArgs("002").WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("ALTER TABLE profiles").WillReturnResult(pgxmock.NewResult("ALTER", 0))
		mock.ExpectExec(recordQuery).WithArgs("002", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		count, err := NewMigrator(mock, testFiles(), zerolog.Nop()).Migrate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should stop at the first failing file", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(existsQuery).WithArgs("001").WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE profiles").WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		count, err := NewMigrator(mock, testFiles(), zerolog.Nop()).Migrate(context.Background())
		assert.ErrorContains(t, err, "001_schema.sql")
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFiles(t *testing.T) {
	names, err := NewMigrator(nil, Files(), zerolog.Nop()).Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_schema.sql", "002_row_level_security.sql", "003_booking_procedures.sql"}, names)
}
