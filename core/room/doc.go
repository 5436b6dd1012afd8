// Package room defines the hotel room record shared by the ledger, the adjacency search
// and every outer layer (HTTP, CLI, database and storage loaders).
//
// # Records
//
// A record arrives as Fields (a decoded JSON/YAML object) and must carry exactly the
// field set {available, floor, hotel, number, price}. FromFields validates the set,
// converts the values and returns an immutable Room value.
//
// # Errors
//
// Any problem with a record is reported as a *ValidationError, which wraps
// ErrInvalidRecord so callers can use either errors.As or errors.Is.
//
// # Usage
//
//	r, err := room.FromFields(room.Fields{
//	    "hotel": "Hotel A", "floor": 1, "number": 3, "price": 25.80, "available": true,
//	})
package room
