package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestMigrate(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS movies`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFailure(t *testing.T) {
	mock := newMock(t)

	boom := errors.New("permission denied")
	mock.ExpectExec(`CREATE TABLE`).WillReturnError(boom)

	err := Migrate(context.Background(), mock)
	assert.ErrorIs(t, err, boom)
}

func TestSeedEmptyTable(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectBegin()
	for i := 0; i < 4; i++ {
		mock.ExpectExec(`INSERT INTO movies`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	n, err := Seed(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := Seed(context.Background(), mock)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInsertFailureRollsBack(t *testing.T) {
	mock := newMock(t)

	boom := errors.New("check constraint violated")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO movies`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := Seed(context.Background(), mock)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
