package integrity

import (
	"context"
	"errors"

	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/archive"
	"deviceinfocompare/feature/dumps"
	"deviceinfocompare/feature/integrity/checks"
	"deviceinfocompare/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by the archive check without a storage client.
var ErrStorageDisabled = errors.New("storage is not configured")

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	enum   inventory.Enumerator
	logger *zap.Logger
}

// NewService creates a new integrity service. client and enum may be nil.
func NewService(db *gorm.DB, client storage.Client, bucket string, enum inventory.Enumerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		enum:   enum,
		logger: logger,
	}
}

// CheckSchema verifies the dump and device tables.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	var db *gorm.DB
	if s.db != nil {
		db = s.db.WithContext(ctx)
	}
	return checks.CheckSchema(db, dumps.Dump{}, dumps.Device{})
}

// CheckArchive inspects the archive bucket.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckArchive(ctx, s.client, s.bucket, archive.Prefix)
}

// CheckInventory probes live device enumeration.
func (s *Service) CheckInventory(ctx context.Context) *checks.InventoryReport {
	return checks.CheckInventory(ctx, s.enum)
}

// Report is the combined result of all checks.
type Report struct {
	Healthy   bool                    `json:"healthy"`
	Schema    *checks.SchemaReport    `json:"schema,omitempty"`
	Archive   *checks.ArchiveReport   `json:"archive,omitempty"`
	Inventory *checks.InventoryReport `json:"inventory"`
	Errors    map[string]string       `json:"errors"`
}

// CheckAll runs every check. Failures are collected rather than returned.
// An unavailable archive or inventory does not make the report unhealthy.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true, Errors: map[string]string{}}

	if schema, err := s.CheckSchema(ctx); err != nil {
		report.Errors["schema"] = err.Error()
		report.Healthy = false
	} else {
		report.Schema = schema
		report.Healthy = report.Healthy && schema.Matched
	}

	if arch, err := s.CheckArchive(ctx); err != nil {
		if !errors.Is(err, ErrStorageDisabled) {
			report.Errors["archive"] = err.Error()
			report.Healthy = false
		}
	} else {
		report.Archive = arch
		report.Healthy = report.Healthy && arch.Healthy()
	}

	report.Inventory = s.CheckInventory(ctx)

	s.logger.Debug("Integrity checks finished",
		zap.Bool("healthy", report.Healthy),
		zap.Int("errors", len(report.Errors)),
	)
	return report
}
