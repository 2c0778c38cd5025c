package records

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/store"
)

var exportHeader = []string{"ID", "Patient", "CNIC", "Test", "Result", "Date", "Department"}

func (m *Manager) visibleRows(filter store.ListFilter) ([]store.TestRecord, error) {
	rows, err := m.Store.ListTests(filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "No records to export")
	}
	return rows, nil
}

// ExportText writes the currently visible rows to a plain text file in dir
// and returns its path. The client hands the file to the OS print spooler.
func (m *Manager) ExportText(filter store.ListFilter, dir string) (string, error) {
	rows, err := m.visibleRows(filter)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("hospital-records-%s.txt", uuid.New().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	for _, row := range rows {
		_, err := fmt.Fprintf(f, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.TestID, row.PatientName, row.CNIC, row.TestName, row.Result, row.Date, row.Department)
		if err != nil {
			return "", err
		}
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// ExportXLSX writes the currently visible rows to a spreadsheet in dir and
// returns its path.
func (m *Manager) ExportXLSX(filter store.ListFilter, dir string) (string, error) {
	rows, err := m.visibleRows(filter)
	if err != nil {
		return "", err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Records")
	if err != nil {
		return "", err
	}

	headRow := sheet.AddRow()
	for _, h := range exportHeader {
		headRow.AddCell().Value = h
	}
	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().Value = fmt.Sprintf("%d", row.TestID)
		r.AddCell().Value = row.PatientName
		r.AddCell().Value = row.CNIC
		r.AddCell().Value = row.TestName
		r.AddCell().Value = row.Result
		r.AddCell().Value = row.Date
		r.AddCell().Value = row.Department
	}

	path := filepath.Join(dir, fmt.Sprintf("hospital-records-%s.xlsx", uuid.New().String()))
	if err := file.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
