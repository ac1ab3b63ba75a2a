package patientstore

import (
	"context"
	"sort"

	"github.com/AzielCF/az-medical-mcp/domains/patient"
)

// MemoryRepository serves records from an immutable in-process map.
type MemoryRepository struct {
	records map[string]patient.Record
	ids     []string
}

// NewMemoryRepository indexes records by id. It is safe for concurrent readers.
func NewMemoryRepository(records []patient.Record) *MemoryRepository {
	r := &MemoryRepository{records: make(map[string]patient.Record, len(records))}
	for _, rec := range records {
		r.records[rec.ID] = rec
		r.ids = append(r.ids, rec.ID)
	}
	sort.Strings(r.ids)
	return r
}

func (r *MemoryRepository) Lookup(_ context.Context, id string) (patient.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return patient.Record{}, patient.ErrPatientNotFound
	}
	return rec, nil
}

func (r *MemoryRepository) IDs(_ context.Context) ([]string, error) {
	return append([]string(nil), r.ids...), nil
}
