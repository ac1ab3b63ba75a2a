package patientstore

import (
	"context"
	"testing"

	"github.com/AzielCF/az-medical-mcp/core/config"
	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lookup(t *testing.T) {
	repo := NewMemoryRepository(SampleRecords())
	ctx := context.Background()

	rec, err := repo.Lookup(ctx, "patient_001")
	require.NoError(t, err)
	assert.Equal(t, 45, rec.Demographics.Age)
	assert.Equal(t, "150/95", rec.VitalSigns.BloodPressure)
	assert.Len(t, rec.Medications, 2)

	_, err = repo.Lookup(ctx, "patient_999")
	assert.ErrorIs(t, err, patient.ErrPatientNotFound)
}

func TestMemoryRepository_IDsAreSorted(t *testing.T) {
	records := SampleRecords()
	repo := NewMemoryRepository([]patient.Record{records[1], records[0]})

	ids, err := repo.IDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"patient_001", "patient_002"}, ids)

	ids[0] = "mutated"
	again, _ := repo.IDs(context.Background())
	assert.Equal(t, "patient_001", again[0])
}

func TestSampleRecords_ReturnsCopies(t *testing.T) {
	a := SampleRecords()
	a[0].Conditions[0] = "changed"
	assert.Equal(t, "Type 2 Diabetes", SampleRecords()[0].Conditions[0])
}

func TestOpen_UnknownStore(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{PatientStore: "mongo"}}
	_, _, err := Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported patient store")
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &MemoryRepository{}, repo)
}
