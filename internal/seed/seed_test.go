package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorly/internal/db"
)

func TestCreateDefaultData(t *testing.T) {
	t.Run("Should leave existing coaches untouched", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		for _, coach := range DemoCoaches {
			mock.ExpectBegin()
			mock.ExpectExec("set_config").WithArgs(coach.ID, db.RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
			mock.ExpectExec("INSERT INTO profiles").WillReturnResult(pgxmock.NewResult("INSERT", 0))
			mock.ExpectCommit()
		}

		err = CreateDefaultData(context.Background(), db.NewGateway(mock), zerolog.Nop())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should create new coaches as listed mentors and keep going after failures", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		first := DemoCoaches[0]
		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs(first.ID, db.RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec("INSERT INTO profiles").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO mentors").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE profiles").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		for _, coach := range DemoCoaches[1:] {
			mock.ExpectBegin()
			mock.ExpectExec("set_config").WithArgs(coach.ID, db.RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
			mock.ExpectExec("INSERT INTO profiles").WillReturnError(errors.New("permission denied for table profiles"))
			mock.ExpectRollback()
		}

		err = CreateDefaultData(context.Background(), db.NewGateway(mock), zerolog.Nop())
		assert.ErrorContains(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
