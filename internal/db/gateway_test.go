package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
)

func TestClient_Run(t *testing.T) {
	t.Run("Should bind identity and commit on success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("user-1", RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec("UPDATE profiles").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err = NewGateway(mock).As("user-1").Run(context.Background(), func(q Querier) error {
			_, err := q.Exec(context.Background(), "UPDATE profiles SET full_name = 'x'")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should bind anonymous role without identity", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("", RoleAnonymous).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectCommit()

		client := NewGateway(mock).Anonymous()
		assert.Equal(t, "", client.Subject())
		err = client.Run(context.Background(), func(q Querier) error { return nil })
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should roll back when the unit fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("user-1", RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()

		err = NewGateway(mock).As("user-1").Run(context.Background(), func(q Querier) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should fail when the transaction cannot start", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false
		err = NewGateway(mock).As("user-1").Run(context.Background(), func(q Querier) error {
			called = true
			return nil
		})
		assert.ErrorContains(t, err, "failed to begin transaction")
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClient_Call(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT "approve_booking"("p_booking_id" => $1, "p_mentor_id" => $2)::text`)

	t.Run("Should pass sorted named arguments and return payload", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("mentor-1", RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(query).
			WithArgs("b-1", "mentor-1").
			WillReturnRows(mock.NewRows([]string{"approve_booking"}).AddRow(`{"success": true, "booking": {"id": "b-1", "status": "approved"}}`))
		mock.ExpectCommit()

		result, err := NewGateway(mock).As("mentor-1").Call(context.Background(), "approve_booking", map[string]any{
			"p_mentor_id":  "mentor-1",
			"p_booking_id": "b-1",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NoError(t, result.Err())
		assert.JSONEq(t, `{"id": "b-1", "status": "approved"}`, string(result.Field("booking")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should report rejection as a business error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("mentor-1", RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(query).
			WithArgs("b-1", "mentor-1").
			WillReturnRows(mock.NewRows([]string{"approve_booking"}).AddRow(`{"success": false, "error": "Booking is not pending"}`))
		mock.ExpectCommit()

		result, err := NewGateway(mock).As("mentor-1").Call(context.Background(), "approve_booking", map[string]any{
			"p_booking_id": "b-1",
			"p_mentor_id":  "mentor-1",
		})
		require.NoError(t, err)
		assert.False(t, result.Success)

		var businessErr *apperrors.BusinessError
		require.ErrorAs(t, result.Err(), &businessErr)
		assert.Equal(t, "Booking is not pending", businessErr.Reason)
		assert.Nil(t, result.Field("booking"))
	})

	t.Run("Should surface transport failures as errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WithArgs("mentor-1", RoleAuthenticated).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(query).WithArgs("b-1", "mentor-1").WillReturnError(errors.New("permission denied for function"))
		mock.ExpectRollback()

		result, err := NewGateway(mock).As("mentor-1").Call(context.Background(), "approve_booking", map[string]any{
			"p_booking_id": "b-1",
			"p_mentor_id":  "mentor-1",
		})
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "approve_booking")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParseProcedureResult(t *testing.T) {
	_, err := ParseProcedureResult("not json")
	assert.Error(t, err)

	_, err = ParseProcedureResult(`[1, 2]`)
	assert.Error(t, err)

	_, err = ParseProcedureResult(`{"booking": {}}`)
	assert.Error(t, err)

	result, err := ParseProcedureResult(`{"success": false}`)
	require.NoError(t, err)
	assert.EqualError(t, result.Err(), "Request was rejected")
}
