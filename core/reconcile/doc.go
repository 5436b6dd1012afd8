// Package reconcile compares the rooms held by two sources.
//
// Rooms are matched by location (hotel slug, floor, number). Hotel names that
// only differ in case or punctuation share a slug, so they are matched and the
// spelling difference is reported as a mismatch.
//
// # Workflow
//
//  1. Both sources are loaded concurrently.
//  2. Each side is indexed by location; repeated locations are flagged.
//  3. The union of locations is walked and every difference becomes a Result.
//
// # Usage
//
//	report, err := reconcile.Compare(ctx, rooms.DatabaseSource{DB: db}, rooms.StorageSource{Client: client, Config: cfg})
//	if !report.InSync {
//	    // inspect report.Results
//	}
package reconcile
