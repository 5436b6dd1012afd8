package checks

import (
	"context"
	"fmt"
	"time"

	"room-finder/core/room"
	"room-finder/core/storage"
	"room-finder/feature/rooms"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a storage integrity check.
type StorageReport struct {
	Bucket        string     `json:"bucket"`
	Object        string     `json:"object"`
	BucketExists  bool       `json:"bucket_exists"`
	ObjectExists  bool       `json:"object_exists"`
	Size          int64      `json:"size,omitempty"`
	LastModified  *time.Time `json:"last_modified,omitempty"`
	Records       int        `json:"records"`
	InvalidRecord *int       `json:"invalid_record,omitempty"`
	Errors        []string   `json:"errors"`
	Status        string     `json:"status"` // "ok", "error"
}

// CheckStorage verifies the bucket, the rooms snapshot object and that every record in it is valid.
func CheckStorage(ctx context.Context, client storage.Client, cfg storage.Config) (*StorageReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}

	report := &StorageReport{
		Bucket: cfg.Bucket,
		Object: cfg.RoomsObject,
		Errors: []string{},
		Status: "ok",
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.fail(fmt.Sprintf("bucket %s does not exist", cfg.Bucket))
		return report, nil
	}

	info, err := client.StatObject(ctx, cfg.Bucket, cfg.RoomsObject, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			report.fail(fmt.Sprintf("object %s does not exist", cfg.RoomsObject))
			return report, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", cfg.RoomsObject, err)
	}
	report.ObjectExists = true
	report.Size = info.Size
	if !info.LastModified.IsZero() {
		modified := info.LastModified
		report.LastModified = &modified
	}

	records, err := rooms.LoadFromStorage(ctx, client, cfg)
	if err != nil {
		report.fail(err.Error())
		return report, nil
	}
	report.Records = len(records)

	for i, fields := range records {
		if _, err := room.FromFields(fields); err != nil {
			index := i
			report.InvalidRecord = &index
			report.fail(fmt.Sprintf("record %d: %v", i, err))
			break
		}
	}

	return report, nil
}

// FixStorage creates the bucket and an empty rooms snapshot when they are missing.
// An existing snapshot is never overwritten.
func FixStorage(ctx context.Context, client storage.Client, cfg storage.Config, logger *zap.Logger, report *StorageReport) error {
	if report.ObjectExists {
		return nil
	}

	if err := storage.WriteObject(ctx, client, cfg.Bucket, cfg.RoomsObject, "application/json", []byte("[]")); err != nil {
		logger.Error("Failed to create rooms snapshot", zap.String("object", cfg.RoomsObject), zap.Error(err))
		return err
	}
	logger.Info("Created empty rooms snapshot",
		zap.String("bucket", cfg.Bucket),
		zap.String("object", cfg.RoomsObject))
	return nil
}

func (r *StorageReport) fail(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Status = "error"
}
