package records

import (
	"path/filepath"
	"testing"

	apperrors "hospital-records-server/internal/errors"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	db, err := models.InitDB(models.DatabaseConfig{Path: filepath.Join(t.TempDir(), "hospital.db")})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	return NewManager(store.New(db))
}

func validForm() Form {
	return Form{
		PatientName: "Ali Khan",
		CNIC:        "1234567890123",
		TestName:    "CBC",
		Result:      "Normal",
		Date:        "2026-09-01",
		Department:  "Pathology",
	}
}

func TestAddTestValidation(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name     string
		mutate   func(*Form)
		wantCode apperrors.Code
	}{
		{name: "missing patient name", mutate: func(f *Form) { f.PatientName = "" }, wantCode: apperrors.CodeValidation},
		{name: "missing cnic", mutate: func(f *Form) { f.CNIC = "" }, wantCode: apperrors.CodeValidation},
		{name: "missing test name", mutate: func(f *Form) { f.TestName = "" }, wantCode: apperrors.CodeValidation},
		{name: "whitespace only test name", mutate: func(f *Form) { f.TestName = "   " }, wantCode: apperrors.CodeValidation},
		{name: "cnic too short", mutate: func(f *Form) { f.CNIC = "12345" }, wantCode: apperrors.CodeCNICFormat},
		{name: "cnic too long", mutate: func(f *Form) { f.CNIC = "12345678901234" }, wantCode: apperrors.CodeCNICFormat},
		{name: "cnic with letter", mutate: func(f *Form) { f.CNIC = "123456789012a" }, wantCode: apperrors.CodeCNICFormat},
		{name: "valid", mutate: func(f *Form) {}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			_, err := m.AddTest(form)
			if apperrors.CodeOf(err) != tc.wantCode && !(tc.wantCode == "" && err == nil) {
				t.Fatalf("code = %v (err %v), want %v", apperrors.CodeOf(err), err, tc.wantCode)
			}
		})
	}
}

func TestAddTestUpsertsPatientByCNIC(t *testing.T) {
	m := newTestManager(t)

	first := validForm()
	if _, err := m.AddTest(first); err != nil {
		t.Fatalf("first add: %v", err)
	}

	second := validForm()
	second.PatientName = "Ali K."
	second.TestName = "LFT"
	if _, err := m.AddTest(second); err != nil {
		t.Fatalf("second add: %v", err)
	}

	count, err := m.Store.CountPatientsByCNIC(first.CNIC)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("patient count = %d, want exactly one row per CNIC", count)
	}

	rows, err := m.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 tests for the merged patient", len(rows))
	}
	for _, row := range rows {
		if row.PatientName != "Ali K." {
			t.Fatalf("patient name = %q, want last writer %q", row.PatientName, "Ali K.")
		}
	}
}

func TestAddTestDefaultsDate(t *testing.T) {
	m := newTestManager(t)
	form := validForm()
	form.Date = ""

	record, err := m.AddTest(form)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if record.Date != DefaultDate() {
		t.Fatalf("date = %q, want default %q", record.Date, DefaultDate())
	}
}

func TestUpdateRequiresSelection(t *testing.T) {
	m := newTestManager(t)
	err := m.UpdateSelected(validForm())
	if apperrors.CodeOf(err) != apperrors.CodeNoSelection {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeNoSelection)
	}
}

func TestDeleteRequiresSelectionAndConfirmation(t *testing.T) {
	m := newTestManager(t)

	if err := m.DeleteSelected(true); apperrors.CodeOf(err) != apperrors.CodeNoSelection {
		t.Fatalf("no selection code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeNoSelection)
	}

	record, err := m.AddTest(validForm())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := m.Select(record.TestID); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := m.DeleteSelected(false); apperrors.CodeOf(err) != apperrors.CodeConfirmationRequired {
		t.Fatalf("unconfirmed code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeConfirmationRequired)
	}
	// The unconfirmed attempt must delete nothing and keep the selection.
	if _, ok := m.Selected(); !ok {
		t.Fatal("selection lost after unconfirmed delete")
	}
	rows, err := m.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want record untouched", len(rows))
	}
}

func TestDeleteCascadesOrphanedPatient(t *testing.T) {
	m := newTestManager(t)
	record, err := m.AddTest(validForm())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := m.Select(record.TestID); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := m.DeleteSelected(true); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := m.Search("Ali")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want patient gone from listing", len(rows))
	}
	count, err := m.Store.CountPatientsByCNIC("1234567890123")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("patient count = %d, want 0 after cascade cleanup", count)
	}
	if _, ok := m.Selected(); ok {
		t.Fatal("selection survived delete")
	}
}

func TestSelectUpdateFlow(t *testing.T) {
	m := newTestManager(t)
	record, err := m.AddTest(validForm())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	selected, err := m.Select(record.TestID)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selected.TestName != "CBC" {
		t.Fatalf("selected test = %q, want form fields back", selected.TestName)
	}

	form := validForm()
	form.PatientName = "Ali Khan Jr"
	form.TestName = "CBC Repeat"
	form.Result = "Low"
	if err := m.UpdateSelected(form); err != nil {
		t.Fatalf("update: %v", err)
	}

	rows, err := m.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want in-place mutation", len(rows))
	}
	got := rows[0]
	if got.TestName != "CBC Repeat" || got.Result != "Low" || got.PatientName != "Ali Khan Jr" {
		t.Fatalf("row = %+v, want updated test and patient fields", got)
	}
	if _, ok := m.Selected(); ok {
		t.Fatal("selection survived update")
	}
}

func TestUpdateSurfacesCNICCollision(t *testing.T) {
	m := newTestManager(t)
	record, err := m.AddTest(validForm())
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	other := validForm()
	other.PatientName = "Sara Malik"
	other.CNIC = "9999999999999"
	if _, err := m.AddTest(other); err != nil {
		t.Fatalf("second add: %v", err)
	}

	if _, err := m.Select(record.TestID); err != nil {
		t.Fatalf("select: %v", err)
	}
	form := validForm()
	form.CNIC = "9999999999999"
	err = m.UpdateSelected(form)
	if apperrors.CodeOf(err) != apperrors.CodeConstraintViolation {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeConstraintViolation)
	}
	// Failure keeps the selection so the operator can fix the form and retry.
	if _, ok := m.Selected(); !ok {
		t.Fatal("selection lost after failed update")
	}
}

func TestSelectReplacesPreviousSelection(t *testing.T) {
	m := newTestManager(t)
	first, err := m.AddTest(validForm())
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	other := validForm()
	other.CNIC = "9999999999999"
	other.PatientName = "Sara Malik"
	second, err := m.AddTest(other)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if _, err := m.Select(first.TestID); err != nil {
		t.Fatalf("select first: %v", err)
	}
	if _, err := m.Select(second.TestID); err != nil {
		t.Fatalf("select second: %v", err)
	}
	id, ok := m.Selected()
	if !ok || id != second.TestID {
		t.Fatalf("selected = %d (%v), want %d", id, ok, second.TestID)
	}

	m.Clear()
	if _, ok := m.Selected(); ok {
		t.Fatal("selection survived clear")
	}
}

func TestSelectMissingRecord(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Select(404)
	if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeNotFound)
	}
	if _, ok := m.Selected(); ok {
		t.Fatal("failed select must not set selection")
	}
}

func TestUserManagementWrappers(t *testing.T) {
	m := newTestManager(t)
	if err := m.Store.SeedDefaultUsers(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := m.AddUser("", "pw"); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("empty username code = %v, want validation", apperrors.CodeOf(err))
	}
	if _, err := m.AddUser("nadia", ""); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("empty password code = %v, want validation", apperrors.CodeOf(err))
	}

	user, err := m.AddUser("nadia", "secret")
	if err != nil {
		t.Fatalf("add user: %v", err)
	}

	if err := m.DeleteUser(user.ID, false); apperrors.CodeOf(err) != apperrors.CodeConfirmationRequired {
		t.Fatalf("unconfirmed code = %v, want confirmation required", apperrors.CodeOf(err))
	}
	if err := m.DeleteUser(user.ID, true); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	users, err := m.Store.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("users = %d, want only the seeded defaults", len(users))
	}
}
