// Package store owns the hospital.db schema and every read/write statement
// issued against it. All uniqueness and referential rules live here; callers
// are responsible for field-level validation only.
package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/models"
)

// Store wraps the shared database handle with the record-keeping statements.
type Store struct {
	DB *gorm.DB
}

// New creates a Store around an initialized database handle.
func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// TestFields are the mutable columns of a test row.
type TestFields struct {
	Name       string
	Result     string
	Date       string
	Department string
}

// TestRecord is one joined row of the dashboard table.
type TestRecord struct {
	TestID      uint   `gorm:"column:test_id" json:"testId"`
	PatientName string `gorm:"column:patient_name" json:"patientName"`
	CNIC        string `gorm:"column:cnic" json:"cnic"`
	TestName    string `gorm:"column:test_name" json:"testName"`
	Result      string `gorm:"column:test_result" json:"result"`
	Date        string `gorm:"column:test_date" json:"date"`
	Department  string `gorm:"column:department" json:"department"`
}

// ListFilter narrows ListTests. Department is an exact match, Search is a
// case-insensitive substring over patient name or test name. Both are ANDed
// when both are present.
type ListFilter struct {
	Department string
	Search     string
}

// UpsertPatientByIdentity inserts a patient keyed by CNIC, or, when the CNIC
// is already on file, overwrites that patient's name instead. Last writer
// wins on the name; the CNIC is the merge key. Returns the patient id either
// way.
func (s *Store) UpsertPatientByIdentity(name, cnic string) (uint, error) {
	var patient models.Patient
	err := s.DB.Where("cnic = ?", cnic).First(&patient).Error
	if err == nil {
		if err := s.DB.Model(&patient).Update("patient_name", name).Error; err != nil {
			return 0, err
		}
		return patient.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	patient = models.Patient{Name: name, CNIC: cnic}
	if err := s.DB.Create(&patient).Error; err != nil {
		return 0, err
	}
	return patient.ID, nil
}

// InsertTest creates a test row. The ID field is populated on return.
func (s *Store) InsertTest(test *models.Test) error {
	return s.DB.Create(test).Error
}

// UpdateTest overwrites the mutable columns of an existing test row.
func (s *Store) UpdateTest(testID uint, fields TestFields) error {
	res := s.DB.Model(&models.Test{}).Where("test_id = ?", testID).Updates(map[string]interface{}{
		"test_name":   fields.Name,
		"test_result": fields.Result,
		"test_date":   fields.Date,
		"department":  fields.Department,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "Record no longer exists")
	}
	return nil
}

// UpdateTestsPatient rewrites the name and CNIC of the patient a test belongs
// to. Moving the CNIC onto a value held by a different patient is a
// constraint violation.
func (s *Store) UpdateTestsPatient(testID uint, name, cnic string) error {
	var test models.Test
	if err := s.DB.First(&test, "test_id = ?", testID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "Record no longer exists")
		}
		return err
	}

	var other models.Patient
	err := s.DB.Where("cnic = ? AND patient_id <> ?", cnic, test.PatientID).First(&other).Error
	if err == nil {
		return apperrors.New(apperrors.CodeConstraintViolation, "CNIC already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.DB.Model(&models.Patient{}).Where("patient_id = ?", test.PatientID).Updates(map[string]interface{}{
		"patient_name": name,
		"cnic":         cnic,
	}).Error
}

// DeleteTest removes a test row. Callers run DeleteOrphanedPatients afterward.
func (s *Store) DeleteTest(testID uint) error {
	res := s.DB.Delete(&models.Test{}, "test_id = ?", testID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "Record no longer exists")
	}
	return nil
}

// DeleteOrphanedPatients removes every patient with no remaining tests.
// Invariant: once add/delete workflows settle, no patient has zero tests.
func (s *Store) DeleteOrphanedPatients() error {
	return s.DB.Where("patient_id NOT IN (SELECT patient_id FROM tests)").Delete(&models.Patient{}).Error
}

// ListTests returns the joined test+patient rows matching the filter. Row
// order follows the underlying storage order.
func (s *Store) ListTests(filter ListFilter) ([]TestRecord, error) {
	q := s.DB.Table("tests").
		Select("tests.test_id, patients.patient_name, patients.cnic, tests.test_name, tests.test_result, tests.test_date, tests.department").
		Joins("JOIN patients ON tests.patient_id = patients.patient_id")

	if filter.Department != "" {
		q = q.Where("tests.department = ?", filter.Department)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("(patients.patient_name LIKE ? OR tests.test_name LIKE ?)", pattern, pattern)
	}

	var rows []TestRecord
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTestRecord returns one joined row by test id.
func (s *Store) GetTestRecord(testID uint) (*TestRecord, error) {
	var row TestRecord
	res := s.DB.Table("tests").
		Select("tests.test_id, patients.patient_name, patients.cnic, tests.test_name, tests.test_result, tests.test_date, tests.department").
		Joins("JOIN patients ON tests.patient_id = patients.patient_id").
		Where("tests.test_id = ?", testID).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "Record no longer exists")
	}
	return &row, nil
}

// CountPatientsByCNIC reports how many patient rows carry a CNIC. The unique
// index keeps this at zero or one; anything else is a corrupted data file.
func (s *Store) CountPatientsByCNIC(cnic string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Patient{}).Where("cnic = ?", cnic).Count(&count).Error
	return count, err
}
