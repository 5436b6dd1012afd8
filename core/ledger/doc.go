// Package ledger keeps the price-ordered sequence of available rooms and answers
// budget searches over it.
//
// # Ordering
//
// Rooms are placed by insertion sort on arrival, so the sequence is always
// non-decreasing by price. Rooms with equal prices keep their insertion order.
// Rooms that are not available are never stored, and nothing is ever removed.
//
// # Searching
//
// A search first narrows the sequence to the price window [min, max] with two binary
// searches (LowerBound and UpperBound), then:
//   - for one room, returns the whole window, cheapest first;
//   - for more rooms, hands the window to the adjacency package, which returns blocks of
//     consecutive rooms on the same hotel floor.
//
// An empty ledger, an empty window or no matching block all give an empty result.
//
// # Concurrency
//
// A Ledger is not safe for concurrent use. Callers that share one across goroutines
// must serialize access (see feature/rooms.Service).
package ledger
