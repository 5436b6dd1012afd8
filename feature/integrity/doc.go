// Package integrity provides health checks for the room sources.
//
// # Checks Provided
//
//   - Storage: the bucket exists, the rooms snapshot object exists and every record in it is valid.
//   - Schema: the 'rooms' table has the columns (and declared types) of models.RoomRow.
//   - Drift: the rooms table and the storage snapshot hold the same rooms (core/reconcile).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true).
//   - GET /integrity/drift : Compares database and storage.
package integrity
