package patientstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/AzielCF/az-medical-mcp/infrastructure/valkey"
)

// ValkeyRepository reads patient records stored as JSON strings, with the
// id index kept in a set.
type ValkeyRepository struct {
	client *valkey.Client
	prefix string
	index  string
}

func NewValkeyRepository(client *valkey.Client) *ValkeyRepository {
	return &ValkeyRepository{
		client: client,
		prefix: client.Key("patient") + ":",
		index:  client.Key("patients"),
	}
}

func (r *ValkeyRepository) fullKey(id string) string {
	return r.prefix + id
}

// Seed writes records that do not exist yet and registers their ids.
func (r *ValkeyRepository) Seed(ctx context.Context, records []patient.Record) error {
	inner := r.client.Inner()
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal patient %s: %w", rec.ID, err)
		}
		cmd := inner.B().Set().Key(r.fullKey(rec.ID)).Value(string(data)).Nx().Build()
		if err := inner.Do(ctx, cmd).Error(); err != nil && !valkey.IsNil(err) {
			return fmt.Errorf("failed to seed patient %s: %w", rec.ID, err)
		}
		if err := inner.Do(ctx, inner.B().Sadd().Key(r.index).Member(rec.ID).Build()).Error(); err != nil {
			return fmt.Errorf("failed to index patient %s: %w", rec.ID, err)
		}
	}
	return nil
}

func (r *ValkeyRepository) Lookup(ctx context.Context, id string) (patient.Record, error) {
	cmd := r.client.Inner().B().Get().Key(r.fullKey(id)).Build()
	data, err := r.client.Inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsNil(err) {
			return patient.Record{}, patient.ErrPatientNotFound
		}
		return patient.Record{}, fmt.Errorf("failed to get patient from valkey: %w", err)
	}

	var rec patient.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return patient.Record{}, fmt.Errorf("failed to unmarshal patient: %w", err)
	}
	return rec, nil
}

func (r *ValkeyRepository) IDs(ctx context.Context) ([]string, error) {
	cmd := r.client.Inner().B().Smembers().Key(r.index).Build()
	ids, err := r.client.Inner().Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to list patients from valkey: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
