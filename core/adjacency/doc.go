// Package adjacency finds blocks of physically adjacent rooms.
//
// Rooms are adjacent when they are in the same hotel, on the same floor, and their
// numbers are consecutive. Hotels are compared by their slug (see utils.Slug), so
// spelling variants of one hotel name fall into the same partition.
//
// FindBlocks scans a price-ordered slice once. Before each step it pulls the
// lowest-numbered remaining room into place, which makes the scan ascend by room
// number while tracking one candidate run per (hotel, floor). A run that reaches the
// requested size is reported and reset, so a room belongs to at most one block.
//
// The input is copied first; the caller's slice is never reordered.
package adjacency
