package checks

import (
	"context"
	"errors"
	"testing"

	"deviceinfocompare/core/database"
	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/core/storage/mocks"
	"deviceinfocompare/feature/inventory"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Extra string `gorm:"column:extra"`
	Note  string
}

func (widget) TableName() string { return "widget" }

func TestModelColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "extra"}, ModelColumns(widget{}))
	assert.Equal(t, []string{"id", "name", "extra"}, ModelColumns(&widget{}))
	assert.Nil(t, ModelColumns("not a struct"))
}

func TestCheckSchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)

	t.Run("Missing Table", func(t *testing.T) {
		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, "error", report.Tables["widget"].Status)
		assert.ElementsMatch(t, []string{"id", "name", "extra"}, report.Tables["widget"].MissingColumns)
	})

	t.Run("Missing Column", func(t *testing.T) {
		require.NoError(t, db.Exec("CREATE TABLE widget (id INTEGER PRIMARY KEY, name TEXT)").Error)

		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"extra"}, report.Tables["widget"].MissingColumns)
	})

	t.Run("Matched", func(t *testing.T) {
		require.NoError(t, db.Exec("ALTER TABLE widget ADD COLUMN extra TEXT").Error)

		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "ok", report.Tables["widget"].Status)
		assert.Empty(t, report.Tables["widget"].MissingColumns)
	})

	t.Run("Nil DB", func(t *testing.T) {
		_, err := CheckSchema(nil, widget{})
		assert.Error(t, err)
	})
}

func listing(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestCheckArchive(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "deviceinfo").Return(false, nil)

		report, err := CheckArchive(context.Background(), mockClient, "deviceinfo", "dumps/")
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.True(t, report.Healthy())
		mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Mixed Objects", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "deviceinfo").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "deviceinfo", mock.Anything).Return(listing(
			minio.ObjectInfo{Key: "dumps/1.json", Size: 300},
			minio.ObjectInfo{Key: "dumps/2.json", Size: 0},
			minio.ObjectInfo{Key: "dumps/notes.txt", Size: 10},
			minio.ObjectInfo{Key: "dumps/3.json", Size: 512},
		))

		report, err := CheckArchive(context.Background(), mockClient, "deviceinfo", "dumps/")
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.Equal(t, 2, report.Documents)
		assert.Equal(t, []string{"dumps/2.json"}, report.Empty)
		assert.Equal(t, []string{"dumps/notes.txt"}, report.Unexpected)
		assert.False(t, report.Healthy())
	})

	t.Run("Bucket Check Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "deviceinfo").Return(false, errors.New("timeout"))

		_, err := CheckArchive(context.Background(), mockClient, "deviceinfo", "dumps/")
		assert.Error(t, err)
	})

	t.Run("List Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "deviceinfo").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "deviceinfo", mock.Anything).Return(listing(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := CheckArchive(context.Background(), mockClient, "deviceinfo", "dumps/")
		assert.Error(t, err)
	})
}

func TestCheckInventory(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		report := CheckInventory(context.Background(), nil)
		assert.False(t, report.Available)
		assert.Equal(t, inventory.ErrUnsupportedPlatform.Error(), report.Error)
	})

	t.Run("Available", func(t *testing.T) {
		enum := inventory.EnumeratorFunc(func(ctx context.Context) ([]reconcile.DeviceRecord, error) {
			return []reconcile.DeviceRecord{{DeviceID: "A"}, {DeviceID: "B"}}, nil
		})
		report := CheckInventory(context.Background(), enum)
		assert.True(t, report.Available)
		assert.Equal(t, 2, report.DeviceCount)
		assert.Empty(t, report.Error)
	})

	t.Run("Failing", func(t *testing.T) {
		enum := inventory.EnumeratorFunc(func(ctx context.Context) ([]reconcile.DeviceRecord, error) {
			return nil, errors.New("powershell not found")
		})
		report := CheckInventory(context.Background(), enum)
		assert.False(t, report.Available)
		assert.Equal(t, "powershell not found", report.Error)
	})
}
