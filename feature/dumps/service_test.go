package dumps

import (
	"context"
	"errors"
	"testing"
	"time"

	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/feature/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// liveDevices returns an enumerator yielding a fixed device list.
func liveDevices(devices ...reconcile.DeviceRecord) inventory.Enumerator {
	return inventory.EnumeratorFunc(func(ctx context.Context) ([]reconcile.DeviceRecord, error) {
		return append([]reconcile.DeviceRecord(nil), devices...), nil
	})
}

func setupService(t *testing.T, enum inventory.Enumerator) *Service {
	t.Helper()
	svc := NewService(setupRepository(t), enum, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_DumpDevices(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))
	ctx := context.Background()

	dump, count, err := svc.DumpDevices(ctx, "  after driver update ")
	require.NoError(t, err)
	assert.Equal(t, len(sampleDevices), count)
	assert.Equal(t, "after driver update", dump.Description)
	assert.Equal(t, 2024, dump.Datetime.Year())

	stored, err := svc.Snapshot(ctx, dump.ID)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Snapshot(sampleDevices), stored)
}

func TestService_DumpDevices_DefaultDescription(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))

	dump, _, err := svc.DumpDevices(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDescription, dump.Description)
}

func TestService_DumpDevices_EnumerationFailure(t *testing.T) {
	failing := inventory.EnumeratorFunc(func(ctx context.Context) ([]reconcile.DeviceRecord, error) {
		return nil, errors.New("powershell exited with status 1")
	})
	svc := setupService(t, failing)
	ctx := context.Background()

	_, _, err := svc.DumpDevices(ctx, "broken")
	assert.Error(t, err)

	// No empty dump is left behind
	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestService_NoEnumerator(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.CurrentDevices(ctx)
	assert.ErrorIs(t, err, inventory.ErrUnsupportedPlatform)

	_, err = svc.Snapshot(ctx, CurrentDumpID)
	assert.ErrorIs(t, err, inventory.ErrUnsupportedPlatform)

	// Stored dumps remain comparable without live enumeration
	first, err := svc.Import(ctx, "first", time.Time{}, reconcile.Snapshot{sampleDevices[0]})
	require.NoError(t, err)
	second, err := svc.Import(ctx, "", time.Time{}, reconcile.Snapshot(sampleDevices))
	require.NoError(t, err)
	assert.Equal(t, DefaultDescription, second.Description)

	prev := first.ID
	cmp, err := svc.Compare(ctx, second.ID, &prev)
	require.NoError(t, err)
	assert.Equal(t, 2, cmp.Report.Delta)
	assert.Len(t, cmp.Report.New, 2)
}

func TestService_Compare_DefaultsToLastDump(t *testing.T) {
	live := []reconcile.DeviceRecord{
		{DeviceID: sampleDevices[0].DeviceID, DeviceName: "Intel Ethernet", DeviceClass: "Net", DeviceStatus: false},
		{DeviceID: sampleDevices[1].DeviceID, DeviceName: "USB Receiver", DeviceClass: "USB", DeviceStatus: true},
		{DeviceID: "BTH\\MS_BTHPAN", DeviceName: "Bluetooth PAN", DeviceClass: "Bluetooth", DeviceStatus: true},
	}
	svc := setupService(t, liveDevices(live...))
	ctx := context.Background()

	_, err := svc.Import(ctx, "older", time.Time{}, reconcile.Snapshot{sampleDevices[0]})
	require.NoError(t, err)
	last, err := svc.Import(ctx, "baseline", time.Time{}, reconcile.Snapshot(sampleDevices))
	require.NoError(t, err)

	cmp, err := svc.Compare(ctx, CurrentDumpID, nil)
	require.NoError(t, err)

	assert.Equal(t, CurrentDumpID, cmp.CurrentID)
	assert.Equal(t, last.ID, cmp.PreviousID)
	assert.Equal(t, []string{"HDAUDIO\\FUNC_01"}, reconcile.Snapshot(cmp.Report.Missing).IDs())
	assert.Equal(t, []string{"BTH\\MS_BTHPAN"}, reconcile.Snapshot(cmp.Report.New).IDs())
	assert.Equal(t, []string{sampleDevices[1].DeviceID}, reconcile.Snapshot(cmp.Report.Fixed).IDs())
	assert.Equal(t, []string{sampleDevices[0].DeviceID}, reconcile.Snapshot(cmp.Report.Broken).IDs())
	assert.Equal(t, 0, cmp.Report.Delta)
}

func TestService_Compare_NoDumps(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))

	_, err := svc.Compare(context.Background(), CurrentDumpID, nil)
	assert.ErrorIs(t, err, ErrNoDumps)
}

func TestService_Compare_UnknownDump(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))
	missing := uint(99)

	_, err := svc.Compare(context.Background(), CurrentDumpID, &missing)
	assert.ErrorIs(t, err, ErrDumpNotFound)
}

func TestService_Compare_LiveAgainstLive(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))
	live := CurrentDumpID

	cmp, err := svc.Compare(context.Background(), CurrentDumpID, &live)
	require.NoError(t, err)
	assert.False(t, cmp.Report.HasChanges())
}

func TestService_Remove(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Remove(ctx, CurrentDumpID), ErrAbstractDump)

	dump, _, err := svc.DumpDevices(ctx, "temp")
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, dump.ID))
	assert.ErrorIs(t, svc.Remove(ctx, dump.ID), ErrDumpNotFound)
}

func TestService_Clear(t *testing.T) {
	svc := setupService(t, liveDevices(sampleDevices...))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, err := svc.DumpDevices(ctx, "")
		require.NoError(t, err)
	}

	removed, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = svc.Last(ctx)
	assert.ErrorIs(t, err, ErrNoDumps)
}
