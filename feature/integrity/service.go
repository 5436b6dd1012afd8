package integrity

import (
	"context"
	"fmt"

	"room-finder/core/reconcile"
	"room-finder/core/storage"
	"room-finder/feature/integrity/checks"
	"room-finder/feature/rooms"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	storageCfg storage.Config
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService creates a new integrity service. Client and db may be nil; the
// matching checks then report an error.
func NewService(client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		storageCfg: storageCfg,
		db:         db,
		logger:     logger,
	}
}

// CheckStorage verifies the bucket and the rooms snapshot.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.storageCfg)
}

// FixStorage creates whatever CheckStorage found missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, s.storageCfg, s.logger, report)
}

// CheckSchema verifies the rooms table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// FixSchema migrates the rooms table.
func (s *Service) FixSchema() error {
	return checks.FixSchema(s.db, s.logger)
}

// CheckDrift compares the rooms table with the storage snapshot.
func (s *Service) CheckDrift(ctx context.Context) (*reconcile.Report, error) {
	if s.db == nil || s.client == nil {
		return nil, fmt.Errorf("drift check needs both database and storage")
	}
	return reconcile.Compare(ctx,
		rooms.DatabaseSource{DB: s.db},
		rooms.StorageSource{Client: s.client, Config: s.storageCfg})
}
