package patientstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// patientModel keeps gorm tags out of the domain record.
type patientModel struct {
	ID                  string `gorm:"primaryKey"`
	Age                 int
	Gender              string
	MedicalRecordNumber string `gorm:"column:medical_record_number"`
	BloodPressure       string
	HeartRate           int
	Temperature         string
	RespiratoryRate     int
	OxygenSaturation    string
	Medications         []patient.Medication `gorm:"serializer:json"`
	Conditions          []string             `gorm:"serializer:json"`
	LastVisit           string
	Notes               string
}

func (patientModel) TableName() string {
	return "patients"
}

// GormRepository reads patient records from a SQL database (sqlite or postgres).
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Init migrates the schema and inserts seed records that are not present yet.
func (r *GormRepository) Init(ctx context.Context, seed []patient.Record) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&patientModel{}); err != nil {
		return fmt.Errorf("failed to migrate patients table: %w", err)
	}
	if len(seed) == 0 {
		return nil
	}
	models := make([]patientModel, len(seed))
	for i, rec := range seed {
		models[i] = toPatientModel(rec)
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
	if err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}
	return nil
}

func (r *GormRepository) Lookup(ctx context.Context, id string) (patient.Record, error) {
	var model patientModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return patient.Record{}, patient.ErrPatientNotFound
		}
		return patient.Record{}, err
	}
	return fromPatientModel(model), nil
}

func (r *GormRepository) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&patientModel{}).Order("id ASC").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toPatientModel(rec patient.Record) patientModel {
	return patientModel{
		ID:                  rec.ID,
		Age:                 rec.Demographics.Age,
		Gender:              rec.Demographics.Gender,
		MedicalRecordNumber: rec.Demographics.MedicalRecordNumber,
		BloodPressure:       rec.VitalSigns.BloodPressure,
		HeartRate:           rec.VitalSigns.HeartRate,
		Temperature:         rec.VitalSigns.Temperature,
		RespiratoryRate:     rec.VitalSigns.RespiratoryRate,
		OxygenSaturation:    rec.VitalSigns.OxygenSaturation,
		Medications:         rec.Medications,
		Conditions:          rec.Conditions,
		LastVisit:           rec.LastVisit,
		Notes:               rec.Notes,
	}
}

func fromPatientModel(m patientModel) patient.Record {
	return patient.Record{
		ID: m.ID,
		Demographics: patient.Demographics{
			Age:                 m.Age,
			Gender:              m.Gender,
			MedicalRecordNumber: m.MedicalRecordNumber,
		},
		VitalSigns: patient.VitalSigns{
			BloodPressure:    m.BloodPressure,
			HeartRate:        m.HeartRate,
			Temperature:      m.Temperature,
			RespiratoryRate:  m.RespiratoryRate,
			OxygenSaturation: m.OxygenSaturation,
		},
		Medications: m.Medications,
		Conditions:  m.Conditions,
		LastVisit:   m.LastVisit,
		Notes:       m.Notes,
	}
}
