// Package rooms exposes the room ledger over HTTP and feeds it from external sources.
//
// # Service
//
// Service wraps a core/ledger.Ledger with a read/write lock. Inserts take the write
// lock, searches the read lock. Every change assigns the ledger a new generation id
// (a UUID) that is part of the search cache key, so cached results never outlive the
// ledger they came from, even with several processes sharing one Redis.
//
// # Sources
//
//   - database: the 'rooms' table (models.RoomRow), loaded through GORM.
//   - storage: a JSON array of room records at storage.rooms_object.
//   - file: a YAML or JSON array of records, used by the CLI.
//
// Reload builds a fresh ledger from a source and swaps it in. Concurrent reloads of
// one source are collapsed with singleflight.
//
// # Routes
//
//   - GET  /rooms            all rooms, cheapest first
//   - POST /rooms            insert a record or an array of records
//   - GET  /rooms/search     ?rooms=N&min=X&max=Y
//   - POST /rooms/reload     ?source=database|storage
//   - POST /rooms/snapshot   write the rooms to object storage
package rooms
