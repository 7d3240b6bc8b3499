package dumps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deviceinfocompare/core/database"
	"deviceinfocompare/core/reconcile"

	"gorm.io/gorm"
)

var (
	// ErrDumpNotFound is returned when no dump exists with the requested id.
	ErrDumpNotFound = errors.New("dump not found")
	// ErrNoDumps is returned when the store holds no dumps at all.
	ErrNoDumps = errors.New("no dumps found")
)

// insertBatchSize bounds the rows per INSERT statement.
const insertBatchSize = 100

// Repository persists dumps and their devices.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on the given database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the dump and device tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Dump{}, &Device{}); err != nil {
		return fmt.Errorf("failed to migrate dump schema: %w", err)
	}
	return nil
}

// VerifySchema returns the device columns missing from the live table.
func (r *Repository) VerifySchema(ctx context.Context) ([]string, error) {
	return database.MissingColumns(r.db.WithContext(ctx), Device{}.TableName(), deviceColumns)
}

// CreateDump stores a dump and its devices in one transaction.
// Device rows keep the order of devices.
func (r *Repository) CreateDump(ctx context.Context, description string, at time.Time, devices []reconcile.DeviceRecord) (*Dump, error) {
	dump := &Dump{Datetime: at.UTC(), Description: description}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dump).Error; err != nil {
			return fmt.Errorf("failed to create dump: %w", err)
		}
		if len(devices) == 0 {
			return nil
		}

		rows := make([]Device, 0, len(devices))
		for _, rec := range devices {
			rows = append(rows, newDevice(dump.ID, rec))
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to store devices: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dump, nil
}

// ListDumps returns all dumps with their device counts, oldest first.
func (r *Repository) ListDumps(ctx context.Context) ([]DumpSummary, error) {
	db := r.db.WithContext(ctx)

	var dumps []Dump
	if err := db.Order("id ASC").Find(&dumps).Error; err != nil {
		return nil, fmt.Errorf("failed to list dumps: %w", err)
	}

	var counts []struct {
		DumpID uint
		Total  int64
	}
	err := db.Model(&Device{}).
		Select("dump_id, COUNT(*) AS total").
		Group("dump_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count devices: %w", err)
	}

	byDump := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byDump[c.DumpID] = c.Total
	}

	summaries := make([]DumpSummary, 0, len(dumps))
	for _, d := range dumps {
		summaries = append(summaries, DumpSummary{
			ID:          d.ID,
			Datetime:    d.Datetime,
			Description: d.Description,
			DeviceCount: byDump[d.ID],
		})
	}
	return summaries, nil
}

// GetDump returns the dump with the given id.
func (r *Repository) GetDump(ctx context.Context, id uint) (*Dump, error) {
	var dump Dump
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dump).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrDumpNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dump %d: %w", id, err)
	}
	return &dump, nil
}

// LastDump returns the most recently created dump.
func (r *Repository) LastDump(ctx context.Context) (*Dump, error) {
	var dump Dump
	err := r.db.WithContext(ctx).Order("id DESC").First(&dump).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoDumps
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last dump: %w", err)
	}
	return &dump, nil
}

// DevicesByDumpID materializes the devices of a dump as a snapshot in
// insertion order. It fails with ErrDumpNotFound if the dump is absent.
func (r *Repository) DevicesByDumpID(ctx context.Context, id uint) (reconcile.Snapshot, error) {
	if _, err := r.GetDump(ctx, id); err != nil {
		return nil, err
	}

	var rows []Device
	if err := r.db.WithContext(ctx).Where("dump_id = ?", id).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load devices of dump %d: %w", id, err)
	}

	snapshot := make(reconcile.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, row.ToRecord())
	}
	return snapshot, nil
}

// RemoveDump deletes a dump and its devices, then compacts the database.
func (r *Repository) RemoveDump(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dump_id = ?", id).Delete(&Device{}).Error; err != nil {
			return fmt.Errorf("failed to delete devices of dump %d: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&Dump{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete dump %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrDumpNotFound, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return database.Vacuum(ctx, r.db)
}

// ClearDumps deletes every dump and device. It returns the number of dumps removed.
func (r *Repository) ClearDumps(ctx context.Context) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Device{}).Error; err != nil {
			return fmt.Errorf("failed to delete devices: %w", err)
		}
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Dump{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete dumps: %w", res.Error)
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, database.Vacuum(ctx, r.db)
}
