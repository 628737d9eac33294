package repository

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"shiptrack/models"
)

func newExceptionRepoMock(t *testing.T) (*PostgresExceptionRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresExceptionRepo(db), mock
}

func TestOpenException(t *testing.T) {
	repo, mock := newExceptionRepoMock(t)

	opened := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO exceptions")).
		WithArgs(int64(2), "HIGH", "DAMAGE", "container seal broken", nil).
		WillReturnRows(sqlmock.NewRows([]string{"exception_id", "opened_at"}).AddRow(int64(5), opened))

	e := &models.Exception{
		ShipmentID: 2,
		Severity:   models.SeverityHigh,
		Category:   "DAMAGE",
		Summary:    "container seal broken",
	}
	require.NoError(t, repo.OpenException(e))
	require.Equal(t, int64(5), e.ID)
	require.Equal(t, opened, e.OpenedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenExceptionValidation(t *testing.T) {
	repo, _ := newExceptionRepoMock(t)

	err := repo.OpenException(&models.Exception{
		ShipmentID: 2, Severity: models.Severity("CRITICAL"), Category: "DAMAGE", Summary: "x",
	})
	var enumErr *models.ErrInvalidEnum
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "severity", enumErr.Field)

	err = repo.OpenException(&models.Exception{
		ShipmentID: 2, Severity: models.SeverityLow, Category: "", Summary: "x",
	})
	require.Error(t, err)
}

func TestCloseException(t *testing.T) {
	repo, mock := newExceptionRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE exceptions SET closed_at=now()")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CloseException(5))

	// Closing twice targets no open row.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE exceptions SET closed_at=now()")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.CloseException(5), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOpenExceptions(t *testing.T) {
	repo, mock := newExceptionRepoMock(t)

	opened := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"exception_id", "shipment_id", "severity", "category", "summary", "details", "opened_at", "closed_at",
	}).AddRow(int64(5), int64(2), "MEDIUM", "DELAY", "port congestion",
		[]byte(`{"hours":36}`), opened, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exceptions")).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	list, err := repo.GetOpenExceptions(2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, models.SeverityMedium, list[0].Severity)
	require.Nil(t, list[0].ClosedAt)
	require.NotNil(t, list[0].Details)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCustoms(t *testing.T) {
	repo, mock := newExceptionRepoMock(t)

	updated := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customs_clearances")).
		WillReturnRows(sqlmock.NewRows([]string{"clearance_id", "updated_at"}).AddRow(int64(3), updated))

	c := &models.CustomsClearance{ShipmentID: 2}
	require.NoError(t, repo.UpsertCustoms(c))
	require.Equal(t, models.CustomsSubmitted, c.Status)
	require.Equal(t, int64(3), c.ID)

	// With an ID set the call is an update.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE customs_clearances SET status=$1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	c.Status = models.CustomsReleased
	require.NoError(t, repo.UpsertCustoms(c))
	require.NoError(t, mock.ExpectationsWereMet())
}
