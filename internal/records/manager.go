// Package records implements the patient/test CRUD workflow and the admin
// user-management workflow on top of the store.
package records

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/store"
)

var (
	validate = validator.New()
	cnicRule = fmt.Sprintf("len=%d,number", models.CNICLength)
)

// Form carries the entry-form fields for add and update.
type Form struct {
	PatientName string `json:"patientName" validate:"required"`
	CNIC        string `json:"cnic" validate:"required"`
	TestName    string `json:"testName" validate:"required"`
	Result      string `json:"result"`
	Date        string `json:"date"`
	Department  string `json:"department"`
}

// Manager orchestrates the record workflows. It owns exactly one piece of
// mutable state: the currently selected test id. Selection is set only by
// Select and cleared after every add, update, delete, and Clear.
type Manager struct {
	Store *store.Store

	mu         sync.Mutex
	selectedID uint
	selected   bool
}

// NewManager creates a record Manager.
func NewManager(st *store.Store) *Manager {
	return &Manager{Store: st}
}

// DefaultDate is the value the date field starts with.
func DefaultDate() string {
	return time.Now().Format("2006-01-02")
}

func validateForm(form *Form) error {
	form.PatientName = strings.TrimSpace(form.PatientName)
	form.CNIC = strings.TrimSpace(form.CNIC)
	form.TestName = strings.TrimSpace(form.TestName)

	if err := validate.StructPartial(form, "PatientName", "CNIC", "TestName"); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "Patient Name, CNIC & Test Name required", err)
	}
	if err := validate.Var(form.CNIC, cnicRule); err != nil {
		return apperrors.Wrap(apperrors.CodeCNICFormat, "CNIC must be 13 digits", err)
	}
	return nil
}

// AddTest validates the form, upserts the patient by CNIC, and inserts the
// test row. The new composite record is returned and any selection cleared.
func (m *Manager) AddTest(form Form) (*store.TestRecord, error) {
	if err := validateForm(&form); err != nil {
		return nil, err
	}
	if form.Date == "" {
		form.Date = DefaultDate()
	}

	patientID, err := m.Store.UpsertPatientByIdentity(form.PatientName, form.CNIC)
	if err != nil {
		return nil, err
	}

	test := models.Test{
		Name:       form.TestName,
		Result:     form.Result,
		Date:       form.Date,
		Department: form.Department,
		PatientID:  patientID,
	}
	if err := m.Store.InsertTest(&test); err != nil {
		return nil, err
	}

	m.Clear()
	return &store.TestRecord{
		TestID:      test.ID,
		PatientName: form.PatientName,
		CNIC:        form.CNIC,
		TestName:    form.TestName,
		Result:      form.Result,
		Date:        form.Date,
		Department:  form.Department,
	}, nil
}

// UpdateSelected rewrites the selected test's fields and, jointly, its
// patient's name and CNIC. A CNIC collision with a different patient is
// surfaced as a constraint violation and leaves the selection intact so the
// operator can correct the form and retry.
func (m *Manager) UpdateSelected(form Form) error {
	testID, ok := m.Selected()
	if !ok {
		return apperrors.New(apperrors.CodeNoSelection, "Select a record to update")
	}
	if err := validateForm(&form); err != nil {
		return err
	}

	fields := store.TestFields{
		Name:       form.TestName,
		Result:     form.Result,
		Date:       form.Date,
		Department: form.Department,
	}
	if err := m.Store.UpdateTest(testID, fields); err != nil {
		return err
	}
	if err := m.Store.UpdateTestsPatient(testID, form.PatientName, form.CNIC); err != nil {
		return err
	}

	m.Clear()
	return nil
}

// DeleteSelected removes the selected test after an explicit confirmation,
// then clears out any patient left with zero tests.
func (m *Manager) DeleteSelected(confirmed bool) error {
	testID, ok := m.Selected()
	if !ok {
		return apperrors.New(apperrors.CodeNoSelection, "Select a record to delete")
	}
	if !confirmed {
		return apperrors.New(apperrors.CodeConfirmationRequired, "Are you sure you want to delete this record?")
	}

	if err := m.Store.DeleteTest(testID); err != nil {
		return err
	}
	if err := m.Store.DeleteOrphanedPatients(); err != nil {
		return err
	}

	m.Clear()
	return nil
}

// Select marks a test row as the target of the next update or delete and
// returns its fields so the caller can populate the entry form.
func (m *Manager) Select(testID uint) (*store.TestRecord, error) {
	record, err := m.Store.GetTestRecord(testID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.selectedID = testID
	m.selected = true
	m.mu.Unlock()
	return record, nil
}

// Selected returns the currently selected test id, if any.
func (m *Manager) Selected() (uint, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedID, m.selected
}

// Clear drops the current selection.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.selectedID = 0
	m.selected = false
	m.mu.Unlock()
}

// List returns the records matching a combined filter. Department and search
// are ANDed when both are present.
func (m *Manager) List(filter store.ListFilter) ([]store.TestRecord, error) {
	return m.Store.ListTests(filter)
}

// ListAll returns every record.
func (m *Manager) ListAll() ([]store.TestRecord, error) {
	return m.Store.ListTests(store.ListFilter{})
}

// Search returns the records whose patient name or test name contains the
// text, case-insensitively.
func (m *Manager) Search(text string) ([]store.TestRecord, error) {
	return m.Store.ListTests(store.ListFilter{Search: text})
}

// FilterByDepartment returns the records of one department.
func (m *Manager) FilterByDepartment(dept string) ([]store.TestRecord, error) {
	return m.Store.ListTests(store.ListFilter{Department: dept})
}

// AddUser creates a login account (admin panel).
func (m *Manager) AddUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "Username & Password required")
	}
	return m.Store.InsertUser(username, password)
}

// DeleteUser removes a login account after an explicit confirmation (admin
// panel). Seeded default accounts are never deletable.
func (m *Manager) DeleteUser(userID uint, confirmed bool) error {
	if !confirmed {
		return apperrors.New(apperrors.CodeConfirmationRequired, "Are you sure you want to delete this user?")
	}
	return m.Store.DeleteUser(userID)
}
