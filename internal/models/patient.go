package models

// CNICLength is the exact number of digits in a national identity number.
const CNICLength = 13

// Patient represents a person tests are recorded against. The CNIC is the
// unique natural key; patient rows are created and merged through it, never
// addressed directly by the dashboard.
type Patient struct {
	ID   uint   `gorm:"column:patient_id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:patient_name;not null" json:"name"`
	CNIC string `gorm:"column:cnic;uniqueIndex;not null" json:"cnic"`

	// Relations (not always preloaded)
	Tests []Test `gorm:"foreignKey:PatientID" json:"-"`
}

// TableName preserves the legacy table name.
func (Patient) TableName() string {
	return "patients"
}
