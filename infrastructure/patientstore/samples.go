package patientstore

import "github.com/AzielCF/az-medical-mcp/domains/patient"

// SampleRecords returns the two built-in demonstration records, ordered by id.
// Every call returns fresh copies.
func SampleRecords() []patient.Record {
	return []patient.Record{
		{
			ID: "patient_001",
			Demographics: patient.Demographics{
				Age:                 45,
				Gender:              "male",
				MedicalRecordNumber: "MRN001",
			},
			VitalSigns: patient.VitalSigns{
				BloodPressure:    "150/95",
				HeartRate:        88,
				Temperature:      "98.6F",
				RespiratoryRate:  16,
				OxygenSaturation: "98%",
			},
			Medications: []patient.Medication{
				{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
				{Name: "Metformin", Dosage: "500mg", Frequency: "BID"},
			},
			Conditions: []string{"Type 2 Diabetes", "Hypertension"},
			LastVisit:  "2024-01-15",
			Notes:      "Patient presents with chest pain and shortness of breath. Stable vital signs.",
		},
		{
			ID: "patient_002",
			Demographics: patient.Demographics{
				Age:                 32,
				Gender:              "female",
				MedicalRecordNumber: "MRN002",
			},
			VitalSigns: patient.VitalSigns{
				BloodPressure:    "120/80",
				HeartRate:        72,
				Temperature:      "98.2F",
				RespiratoryRate:  14,
				OxygenSaturation: "99%",
			},
			Medications: []patient.Medication{
				{Name: "Synthroid", Dosage: "75mcg", Frequency: "daily"},
			},
			Conditions: []string{"Hypothyroidism"},
			LastVisit:  "2024-01-10",
			Notes:      "Regular follow-up for thyroid management. Patient doing well.",
		},
	}
}
