package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainPatient "github.com/AzielCF/az-medical-mcp/domains/patient"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/AzielCF/az-medical-mcp/validations"
)

type patientService struct {
	repo domainPatient.IPatientRepository
	now  func() time.Time
}

func NewPatientService(repo domainPatient.IPatientRepository) domainPatient.IPatientUsecase {
	return &patientService{repo: repo, now: time.Now}
}

func (service *patientService) Summary(ctx context.Context, patientID string) (domainPatient.Summary, error) {
	if err := validations.ValidateID("patient_id", patientID); err != nil {
		return domainPatient.Summary{}, err
	}

	record, err := service.repo.Lookup(ctx, patientID)
	if err != nil {
		if !errors.Is(err, domainPatient.ErrPatientNotFound) {
			return domainPatient.Summary{}, fmt.Errorf("lookup patient %s: %w", patientID, err)
		}
		ids, listErr := service.repo.IDs(ctx)
		if listErr != nil {
			return domainPatient.Summary{}, fmt.Errorf("list patients: %w", listErr)
		}
		return domainPatient.Summary{}, pkgError.WithDetails(
			pkgError.NotFoundError(fmt.Sprintf("Patient %s not found", patientID)),
			map[string]any{"available_patients": ids},
		)
	}

	return domainPatient.Summary{
		PatientID:              record.ID,
		SummaryGenerated:       service.now(),
		Demographics:           record.Demographics,
		CurrentConditions:      append([]string{}, record.Conditions...),
		ActiveMedications:      len(record.Medications),
		LastVisit:              record.LastVisit,
		VitalSignsLastRecorded: record.VitalSigns,
	}, nil
}
