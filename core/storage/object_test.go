package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"room-finder/core/storage"
	"room-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "hotels", "rooms/rooms.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`[]`)), nil)

		data, err := storage.ReadObject(ctx, client, "hotels", "rooms/rooms.json")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
		client.AssertExpectations(t)
	})

	t.Run("GetError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "hotels", "missing.json", mock.Anything).
			Return(nil, errors.New("boom"))

		_, err := storage.ReadObject(ctx, client, "hotels", "missing.json")
		assert.ErrorContains(t, err, "failed to get object hotels/missing.json")
	})
}

func TestWriteObject(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`[{"hotel":"A"}]`)

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "hotels").Return(false, nil)
		client.On("MakeBucket", ctx, "hotels", mock.Anything).Return(nil)
		client.On("PutObject", ctx, "hotels", "rooms/rooms.json", mock.Anything, int64(len(payload)),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
			Return(minio.UploadInfo{}, nil)

		err := storage.WriteObject(ctx, client, "hotels", "rooms/rooms.json", "application/json", payload)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "hotels").Return(true, nil)
		client.On("PutObject", ctx, "hotels", "rooms/rooms.json", mock.Anything, int64(len(payload)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		err := storage.WriteObject(ctx, client, "hotels", "rooms/rooms.json", "application/json", payload)
		require.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "hotels").Return(false, errors.New("offline"))

		err := storage.WriteObject(ctx, client, "hotels", "rooms/rooms.json", "application/json", payload)
		assert.ErrorContains(t, err, "failed to check bucket hotels")
	})
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.False(t, storage.IsNotFound(errors.New("other")))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
}
