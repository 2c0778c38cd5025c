package models

// Departments is the fixed list offered by the dashboard sidebar and the
// entry form. The store itself accepts free text in the department column.
var Departments = []string{
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Gynecology",
	"Radiology",
	"Pathology",
	"Emergency",
}

// Test represents a single recorded test for a patient.
type Test struct {
	ID         uint   `gorm:"column:test_id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:test_name;not null" json:"name"`
	Result     string `gorm:"column:test_result" json:"result"`
	Date       string `gorm:"column:test_date" json:"date"` // free text, defaults to today
	Department string `gorm:"column:department" json:"department"`
	PatientID  uint   `gorm:"column:patient_id" json:"patientId"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// TableName preserves the legacy table name.
func (Test) TableName() string {
	return "tests"
}
