package checks

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"room-finder/core/storage"
	"room-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCfg = storage.Config{Bucket: "hotels", RoomsObject: "rooms/rooms.json"}

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(false, nil)

		report, err := CheckStorage(ctx, client, testCfg)
		require.NoError(t, err)
		assert.Equal(t, "error", report.Status)
		assert.False(t, report.BucketExists)
		assert.Contains(t, report.Errors[0], "does not exist")
	})

	t.Run("Bucket Check Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(false, errors.New("offline"))

		_, err := CheckStorage(ctx, client, testCfg)
		assert.ErrorContains(t, err, "failed to check bucket existence")
	})

	t.Run("Object Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(true, nil)
		client.On("StatObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		report, err := CheckStorage(ctx, client, testCfg)
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.False(t, report.ObjectExists)
		assert.Equal(t, "error", report.Status)
	})

	t.Run("Valid Snapshot", func(t *testing.T) {
		modified := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(true, nil)
		client.On("StatObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything).
			Return(minio.ObjectInfo{Size: 70, LastModified: modified}, nil)
		client.On("GetObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`[{"hotel":"H","floor":1,"number":1,"price":"9.5","available":true}]`)), nil)

		report, err := CheckStorage(ctx, client, testCfg)
		require.NoError(t, err)
		assert.Equal(t, "ok", report.Status)
		assert.Equal(t, 1, report.Records)
		assert.Equal(t, int64(70), report.Size)
		require.NotNil(t, report.LastModified)
		assert.True(t, modified.Equal(*report.LastModified))
		assert.Nil(t, report.InvalidRecord)
		assert.Empty(t, report.Errors)
	})

	t.Run("Invalid Record", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(true, nil)
		client.On("StatObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything).
			Return(minio.ObjectInfo{}, nil)
		client.On("GetObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`[
				{"hotel":"H","floor":1,"number":1,"price":1,"available":true},
				{"hotel":"H","floor":1,"number":2,"price":-1,"available":true}
			]`)), nil)

		report, err := CheckStorage(ctx, client, testCfg)
		require.NoError(t, err)
		assert.Equal(t, "error", report.Status)
		require.NotNil(t, report.InvalidRecord)
		assert.Equal(t, 1, *report.InvalidRecord)
		assert.Contains(t, report.Errors[0], "must not be negative")
	})

	t.Run("Nil Client", func(t *testing.T) {
		_, err := CheckStorage(ctx, nil, testCfg)
		assert.Error(t, err)
	})
}

func TestFixStorage(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Creates Snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "hotels").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "hotels", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "hotels", "rooms/rooms.json", mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		err := FixStorage(ctx, client, testCfg, logger, &StorageReport{})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Keeps Existing Snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		err := FixStorage(ctx, client, testCfg, logger, &StorageReport{ObjectExists: true})
		require.NoError(t, err)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
