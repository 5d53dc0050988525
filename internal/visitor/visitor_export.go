package visitor

import (
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Visitors"

// exportColumns follows the stored field set, one column per field, no
// renaming.
var exportColumns = []string{
	"id",
	"name",
	"company",
	"country",
	"state",
	"city",
	"contact_no",
	"contact_person",
	"contact_person_email",
	"purpose",
	"department",
	"visit_date",
	"created_at",
	"out_time",
}

// BuildWorkbook serializes the given (already filtered) records into a
// spreadsheet for download.
func BuildWorkbook(rows []VisitorResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, col); err != nil {
			return nil, err
		}
	}

	for rowIdx, v := range rows {
		outTime := ""
		if v.OutTime != nil {
			outTime = *v.OutTime
		}
		values := []any{
			v.ID,
			v.Name,
			v.Company,
			v.Country,
			v.State,
			v.City,
			v.ContactNo,
			v.ContactPerson,
			v.ContactPersonEmail,
			v.Purpose,
			v.Department,
			v.VisitDate,
			v.CreatedAt,
			outTime,
		}
		for colIdx, val := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
