package patient

import (
	"context"
	"time"
)

type Demographics struct {
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	MedicalRecordNumber string `json:"medical_record_number"`
}

type VitalSigns struct {
	BloodPressure    string `json:"blood_pressure"`
	HeartRate        int    `json:"heart_rate"`
	Temperature      string `json:"temperature"`
	RespiratoryRate  int    `json:"respiratory_rate"`
	OxygenSaturation string `json:"oxygen_saturation"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type Record struct {
	ID           string       `json:"patient_id"`
	Demographics Demographics `json:"demographics"`
	VitalSigns   VitalSigns   `json:"vital_signs"`
	Medications  []Medication `json:"medications"`
	Conditions   []string     `json:"conditions"`
	LastVisit    string       `json:"last_visit"`
	Notes        string       `json:"notes"`
}

type Summary struct {
	PatientID              string       `json:"patient_id"`
	SummaryGenerated       time.Time    `json:"summary_generated"`
	Demographics           Demographics `json:"demographics"`
	CurrentConditions      []string     `json:"current_conditions"`
	ActiveMedications      int          `json:"active_medications"`
	LastVisit              string       `json:"last_visit"`
	VitalSignsLastRecorded VitalSigns   `json:"vital_signs_last_recorded"`
}

// IPatientRepository is a read-only record source. Lookup returns
// ErrPatientNotFound when id is unknown.
type IPatientRepository interface {
	Lookup(ctx context.Context, id string) (Record, error)
	IDs(ctx context.Context) ([]string, error)
}

type IPatientUsecase interface {
	Summary(ctx context.Context, patientID string) (Summary, error)
}
