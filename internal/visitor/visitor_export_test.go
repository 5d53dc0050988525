package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWorkbook_HeaderAndRows(t *testing.T) {
	out := "2024-05-01T17:30:00Z"
	f, err := BuildWorkbook([]VisitorResponse{
		{
			ID:                 7,
			Name:               "John Doe",
			Company:            "Acme",
			Country:            "India",
			State:              "Maharashtra",
			City:               "Mumbai",
			ContactNo:          "9876543210",
			ContactPerson:      "Jane Carter",
			ContactPersonEmail: "jane.carter@example.com",
			Department:         "Sales",
			Purpose:            "Meeting",
			VisitDate:          "2024-05-01",
			CreatedAt:          "2024-05-01T09:00:00Z",
			OutTime:            &out,
		},
		{
			ID:        8,
			Name:      "Jane Roe",
			Company:   "Globex",
			ContactNo: "9123456789",
			Purpose:   "Interview",
			VisitDate: "2024-05-01",
			CreatedAt: "2024-05-01T10:00:00Z",
		},
	})
	assert.NoError(t, err)

	rows, err := f.GetRows(exportSheet)
	assert.NoError(t, err)
	if !assert.Len(t, rows, 3) {
		return
	}

	assert.Equal(t, exportColumns, rows[0])

	assert.Equal(t, "7", rows[1][0])
	assert.Equal(t, "John Doe", rows[1][1])
	assert.Equal(t, "9876543210", rows[1][6])
	assert.Equal(t, "2024-05-01T17:30:00Z", rows[1][13])

	// Open visit exports an empty out_time cell.
	assert.Equal(t, "8", rows[2][0])
	assert.Equal(t, "Jane Roe", rows[2][1])
	assert.LessOrEqual(t, len(rows[2]), len(exportColumns))
}

func TestBuildWorkbook_EmptyResultStillHasHeader(t *testing.T) {
	f, err := BuildWorkbook(nil)
	assert.NoError(t, err)

	rows, err := f.GetRows(exportSheet)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, exportColumns, rows[0])
	}
}

func TestBuildWorkbook_RenamesDefaultSheet(t *testing.T) {
	f, err := BuildWorkbook(nil)
	assert.NoError(t, err)

	idx, err := f.GetSheetIndex(exportSheet)
	assert.NoError(t, err)
	assert.NotEqual(t, -1, idx)
}
