package history

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func setupTestDB(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(db, DialectPostgres), mock
}

func TestSQLStoreSave(t *testing.T) {
	store, mock := setupTestDB(t)
	report := repair.NewRepairReport()
	report.Status = repair.SuccessStrictJSON
	report.Success = true

	mock.ExpectExec("INSERT INTO repair_reports").WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Save(context.Background(), report)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreFindByReportIDNotFound(t *testing.T) {
	store, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT report_json FROM repair_reports").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"report_json"}))

	_, err := store.FindByReportID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreFindByReportIDFound(t *testing.T) {
	store, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"report_json"}).
		AddRow(`{"report_id":"abc","status":"SUCCESS_STRICT_JSON","success":true}`)
	mock.ExpectQuery("SELECT report_json FROM repair_reports").
		WithArgs("abc").
		WillReturnRows(rows)

	got, err := store.FindByReportID(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", got.ReportID)
	require.Equal(t, repair.SuccessStrictJSON, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
