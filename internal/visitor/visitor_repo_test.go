package visitor

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return NewRepository(gdb), mock
}

func TestRepository_Create_ReturnsGeneratedID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "visitors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	v := &Visitor{Name: "John Doe", Company: "Acme", ContactNo: "9876543210", Purpose: "Meeting"}
	err := repo.Create(context.Background(), v)

	assert.NoError(t, err)
	assert.Equal(t, 42, v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll_TodayPredicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "visitors" WHERE DATE(created_at) = CURRENT_DATE ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact_no"}).
			AddRow(1, "John Doe", "9876543210"))

	rows, err := repo.FindAll(context.Background(), ListFilter{TodayOnly: true})

	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "John Doe", rows[0].Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll_ConjunctiveFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 5, 2, 23, 59, 59, 0, time.Local)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "visitors" WHERE name ILIKE $1 AND contact_no LIKE $2 AND contact_person ILIKE $3 AND created_at >= $4 AND created_at <= $5 ORDER BY created_at DESC`)).
		WithArgs("%john%", "%98765%", "%jane%", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindAll(context.Background(), ListFilter{
		Name:          "john",
		ContactNo:     "98765",
		ContactPerson: "jane",
		From:          &from,
		To:            &to,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOpenByContactNo_OnlyOpenVisits(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "visitors" WHERE contact_no = $1 AND out_time IS NULL ORDER BY created_at DESC`)).
		WithArgs("9876543210", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact_no"}).
			AddRow(3, "John Doe", "9876543210"))

	v, err := repo.FindOpenByContactNo(context.Background(), "9876543210")

	assert.NoError(t, err)
	assert.Equal(t, 3, v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateFields_ReportsRowsAffected(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "visitors" SET "name"=$1 WHERE id = $2`)).
		WithArgs("Jane Roe", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.UpdateFields(context.Background(), 7, map[string]any{"name": "Jane Roe"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkOut_GuardsOpenVisit(t *testing.T) {
	repo, mock := newMockRepo(t)
	stamp := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "visitors" SET "out_time"=$1 WHERE id = $2 AND out_time IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.MarkOut(context.Background(), 7, stamp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Second checkout finds no open row.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "visitors" SET "out_time"=$1 WHERE id = $2 AND out_time IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err = repo.MarkOut(context.Background(), 7, stamp)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
