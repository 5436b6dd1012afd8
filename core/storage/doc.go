// Package storage talks to S3 or MinIO through a narrow Client interface
// (mocked in core/storage/mocks).
//
// Room snapshots are one JSON object per deployment. ReadObject and WriteObject
// move whole objects; WriteObject creates the bucket on first use. IsNotFound
// recognizes a missing key or bucket.
package storage
