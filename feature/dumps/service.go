package dumps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/feature/inventory"

	"go.uber.org/zap"
)

// CurrentDumpID refers to the live device list instead of a stored dump.
const CurrentDumpID uint = 0

// DefaultDescription is stored when a dump is created without one.
const DefaultDescription = "No description"

// ErrAbstractDump is returned when an operation needs a stored dump but got #0.
var ErrAbstractDump = errors.New("dump #0 is the live device list and cannot be modified")

// Service orchestrates enumeration, persistence and comparison of dumps.
type Service struct {
	repo   *Repository
	enum   inventory.Enumerator
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new dump service. enum may be nil on platforms without
// live enumeration; stored dumps remain usable.
func NewService(repo *Repository, enum inventory.Enumerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		enum:   enum,
		logger: logger,
		now:    time.Now,
	}
}

// CurrentDevices captures the live device list.
func (s *Service) CurrentDevices(ctx context.Context) (reconcile.Snapshot, error) {
	if s.enum == nil {
		return nil, inventory.ErrUnsupportedPlatform
	}
	devices, err := s.enum.CurrentDevices(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Snapshot(devices), nil
}

// DumpDevices captures the live device list and stores it as a new dump.
func (s *Service) DumpDevices(ctx context.Context, description string) (*Dump, int, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}

	devices, err := s.CurrentDevices(ctx)
	if err != nil {
		return nil, 0, err
	}

	dump, err := s.repo.CreateDump(ctx, description, s.now(), devices)
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("Dump created",
		zap.Uint("dump_id", dump.ID),
		zap.String("description", dump.Description),
		zap.Int("devices", len(devices)),
	)
	return dump, len(devices), nil
}

// List returns all stored dumps, oldest first.
func (s *Service) List(ctx context.Context) ([]DumpSummary, error) {
	return s.repo.ListDumps(ctx)
}

// Get returns a stored dump.
func (s *Service) Get(ctx context.Context, id uint) (*Dump, error) {
	return s.repo.GetDump(ctx, id)
}

// Last returns the most recent stored dump.
func (s *Service) Last(ctx context.Context) (*Dump, error) {
	return s.repo.LastDump(ctx)
}

// Snapshot returns the devices of a dump, or the live list for CurrentDumpID.
func (s *Service) Snapshot(ctx context.Context, id uint) (reconcile.Snapshot, error) {
	if id == CurrentDumpID {
		return s.CurrentDevices(ctx)
	}
	return s.repo.DevicesByDumpID(ctx, id)
}

// Compare compares two snapshots. A nil previousID selects the most recent
// stored dump.
func (s *Service) Compare(ctx context.Context, currentID uint, previousID *uint) (*Comparison, error) {
	prevID := uint(0)
	if previousID != nil {
		prevID = *previousID
	} else {
		last, err := s.repo.LastDump(ctx)
		if err != nil {
			return nil, err
		}
		prevID = last.ID
	}

	previous, err := s.Snapshot(ctx, prevID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous snapshot #%d: %w", prevID, err)
	}
	current, err := s.Snapshot(ctx, currentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current snapshot #%d: %w", currentID, err)
	}

	report := reconcile.Compare(current, previous)

	s.logger.Debug("Snapshots compared",
		zap.Uint("current_id", currentID),
		zap.Uint("previous_id", prevID),
		zap.Int("delta", report.Delta),
		zap.Bool("changed", report.HasChanges()),
	)

	return &Comparison{
		CurrentID:  currentID,
		PreviousID: prevID,
		Report:     report,
	}, nil
}

// Remove deletes a stored dump.
func (s *Service) Remove(ctx context.Context, id uint) error {
	if id == CurrentDumpID {
		return ErrAbstractDump
	}
	if err := s.repo.RemoveDump(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Dump removed", zap.Uint("dump_id", id))
	return nil
}

// Clear deletes every stored dump.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	removed, err := s.repo.ClearDumps(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("All dumps removed", zap.Int64("count", removed))
	return removed, nil
}

// Import stores an externally captured snapshot as a new dump.
func (s *Service) Import(ctx context.Context, description string, at time.Time, devices reconcile.Snapshot) (*Dump, error) {
	if at.IsZero() {
		at = s.now()
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return s.repo.CreateDump(ctx, description, at, devices)
}
