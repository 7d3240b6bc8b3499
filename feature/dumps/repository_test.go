package dumps

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"deviceinfocompare/core/database"
	"deviceinfocompare/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	repo := NewRepository(setupTestDB(t))
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var sampleDevices = []reconcile.DeviceRecord{
	{DeviceID: "PCI\\VEN_8086&DEV_1234", DeviceName: "Intel Ethernet", DeviceClass: "Net", DeviceStatus: true},
	{DeviceID: "USB\\VID_046D&PID_C52B", DeviceName: "USB Receiver", DeviceClass: "USB", DeviceStatus: false},
	{DeviceID: "HDAUDIO\\FUNC_01", DeviceName: "Realtek Audio", DeviceClass: "MEDIA", DeviceStatus: true},
}

func TestRepository_CreateAndLoad(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	dump, err := repo.CreateDump(ctx, "before update", at, sampleDevices)
	require.NoError(t, err)
	assert.Equal(t, uint(1), dump.ID)
	assert.Equal(t, "before update", dump.Description)

	loaded, err := repo.GetDump(ctx, dump.ID)
	require.NoError(t, err)
	assert.Equal(t, "before update", loaded.Description)
	assert.True(t, at.Equal(loaded.Datetime))

	devices, err := repo.DevicesByDumpID(ctx, dump.ID)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Snapshot(sampleDevices), devices)
}

func TestRepository_CreateEmptyDump(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	dump, err := repo.CreateDump(ctx, "empty", time.Now(), nil)
	require.NoError(t, err)

	devices, err := repo.DevicesByDumpID(ctx, dump.ID)
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestRepository_CreateInBatches(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	devices := make([]reconcile.DeviceRecord, 0, insertBatchSize*2+5)
	for i := 0; i < cap(devices); i++ {
		devices = append(devices, reconcile.DeviceRecord{
			DeviceID:     fmt.Sprintf("ROOT\\DEVICE\\%04d", i),
			DeviceName:   "Device",
			DeviceStatus: i%2 == 0,
		})
	}

	dump, err := repo.CreateDump(ctx, "large", time.Now(), devices)
	require.NoError(t, err)

	loaded, err := repo.DevicesByDumpID(ctx, dump.ID)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Snapshot(devices), loaded)
}

func TestRepository_ListDumps(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	empty, err := repo.ListDumps(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = repo.CreateDump(ctx, "first", time.Now(), sampleDevices)
	require.NoError(t, err)
	_, err = repo.CreateDump(ctx, "second", time.Now(), sampleDevices[:1])
	require.NoError(t, err)
	_, err = repo.CreateDump(ctx, "third", time.Now(), nil)
	require.NoError(t, err)

	summaries, err := repo.ListDumps(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, uint(1), summaries[0].ID)
	assert.Equal(t, "first", summaries[0].Description)
	assert.Equal(t, int64(3), summaries[0].DeviceCount)
	assert.Equal(t, int64(1), summaries[1].DeviceCount)
	assert.Equal(t, int64(0), summaries[2].DeviceCount)
}

func TestRepository_LastDump(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.LastDump(ctx)
	assert.ErrorIs(t, err, ErrNoDumps)

	_, err = repo.CreateDump(ctx, "first", time.Now(), nil)
	require.NoError(t, err)
	second, err := repo.CreateDump(ctx, "second", time.Now(), nil)
	require.NoError(t, err)

	last, err := repo.LastDump(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
}

func TestRepository_NotFound(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.GetDump(ctx, 42)
	assert.ErrorIs(t, err, ErrDumpNotFound)

	_, err = repo.DevicesByDumpID(ctx, 42)
	assert.ErrorIs(t, err, ErrDumpNotFound)

	err = repo.RemoveDump(ctx, 42)
	assert.ErrorIs(t, err, ErrDumpNotFound)
}

func TestRepository_RemoveDump(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	first, err := repo.CreateDump(ctx, "first", time.Now(), sampleDevices)
	require.NoError(t, err)
	second, err := repo.CreateDump(ctx, "second", time.Now(), sampleDevices)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveDump(ctx, first.ID))

	_, err = repo.GetDump(ctx, first.ID)
	assert.ErrorIs(t, err, ErrDumpNotFound)

	var orphans int64
	require.NoError(t, repo.db.Model(&Device{}).Where("dump_id = ?", first.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	remaining, err := repo.DevicesByDumpID(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, len(sampleDevices))
}

func TestRepository_ClearDumps(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.CreateDump(ctx, "dump", time.Now(), sampleDevices)
		require.NoError(t, err)
	}

	removed, err := repo.ClearDumps(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	summaries, err := repo.ListDumps(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	var devices int64
	require.NoError(t, repo.db.Model(&Device{}).Count(&devices).Error)
	assert.Zero(t, devices)

	// Clearing an empty store is not an error
	removed, err = repo.ClearDumps(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRepository_VerifySchema(t *testing.T) {
	repo := setupRepository(t)

	missing, err := repo.VerifySchema(context.Background())
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestRepository_ListDumps_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `dump`").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListDumps(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list dumps")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RemoveDump_RollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `device`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.RemoveDump(context.Background(), 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete devices of dump 7")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDump_RollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `dump`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO `device`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	dump, err := repo.CreateDump(context.Background(), "failing", time.Now(), sampleDevices)
	assert.Nil(t, dump)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store devices")
	assert.NoError(t, mock.ExpectationsWereMet())
}
