package patientstore

import (
	"context"
	"testing"

	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/AzielCF/az-medical-mcp/infrastructure/valkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValkeyRepository_SeedAndLookup(t *testing.T) {
	vk, err := valkey.NewClient(valkey.Config{Address: "localhost:6379", KeyPrefix: "medagent_test"})
	if err != nil {
		t.Skip("No valkey")
	}
	defer vk.Close()
	ctx := context.Background()

	inner := vk.Inner()
	for _, key := range []string{vk.Key("patients"), vk.Key("patient", "patient_001"), vk.Key("patient", "patient_002")} {
		inner.Do(ctx, inner.B().Del().Key(key).Build())
	}

	repo := NewValkeyRepository(vk)
	require.NoError(t, repo.Seed(ctx, SampleRecords()))
	require.NoError(t, repo.Seed(ctx, SampleRecords()))

	rec, err := repo.Lookup(ctx, "patient_001")
	require.NoError(t, err)
	assert.Equal(t, SampleRecords()[0], rec)

	_, err = repo.Lookup(ctx, "patient_404")
	assert.ErrorIs(t, err, patient.ErrPatientNotFound)

	ids, err := repo.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"patient_001", "patient_002"}, ids)
}
