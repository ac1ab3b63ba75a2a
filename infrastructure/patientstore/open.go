package patientstore

import (
	"context"
	"fmt"

	"github.com/AzielCF/az-medical-mcp/core/config"
	"github.com/AzielCF/az-medical-mcp/core/database"
	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/AzielCF/az-medical-mcp/infrastructure/valkey"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreValkey   = "valkey"
)

// Open builds the patient repository selected by cfg.Database.PatientStore and
// seeds it with the sample records. The returned func releases its connections.
func Open(ctx context.Context, cfg *config.Config) (patient.IPatientRepository, func(), error) {
	noop := func() {}

	switch cfg.Database.PatientStore {
	case StoreMemory, "":
		return NewMemoryRepository(SampleRecords()), noop, nil

	case StoreDatabase:
		db, err := database.NewDatabase(cfg)
		if err != nil {
			return nil, noop, err
		}
		repo, closeFn, err := openGorm(ctx, db, SampleRecords())
		if err != nil {
			return nil, noop, err
		}
		logrus.Infof("[PATIENT] Using %s patient store (%s)", cfg.Database.Driver, cfg.Database.Name)
		return repo, closeFn, nil

	case StoreValkey:
		client, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Database.ValkeyAddress,
			Password:  cfg.Database.ValkeyPassword,
			DB:        cfg.Database.ValkeyDB,
			KeyPrefix: cfg.Database.ValkeyKeyPrefix,
		})
		if err != nil {
			return nil, noop, err
		}
		repo := NewValkeyRepository(client)
		if err := repo.Seed(ctx, SampleRecords()); err != nil {
			client.Close()
			return nil, noop, err
		}
		logrus.Infof("[PATIENT] Using valkey patient store (%s)", cfg.Database.ValkeyAddress)
		return repo, client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported patient store: %s", cfg.Database.PatientStore)
	}
}

// openGorm migrates and seeds db. db is closed when that fails.
func openGorm(ctx context.Context, db *gorm.DB, seed []patient.Record) (*GormRepository, func(), error) {
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	repo := NewGormRepository(db)
	if err := repo.Init(ctx, seed); err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return repo, closeFn, nil
}
