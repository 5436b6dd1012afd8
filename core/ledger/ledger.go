package ledger

import (
	"room-finder/core/adjacency"
	"room-finder/core/room"

	"github.com/shopspring/decimal"
)

// Ledger owns the price-ordered sequence of available rooms.
type Ledger struct {
	rooms []room.Room
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Insert validates a raw record and stores it if the room is available.
// A *room.ValidationError leaves the ledger unchanged.
func (l *Ledger) Insert(fields room.Fields) error {
	r, err := room.FromFields(fields)
	if err != nil {
		return err
	}
	l.InsertRoom(r)
	return nil
}

// InsertRoom stores an already structured room if it is available.
// Existing rooms with a strictly greater price are shifted right, so equal prices
// stay in insertion order.
func (l *Ledger) InsertRoom(r room.Room) {
	if !r.Available {
		return
	}

	l.rooms = append(l.rooms, r)
	i := len(l.rooms) - 2
	for ; i >= 0 && l.rooms[i].Price.GreaterThan(r.Price); i-- {
		l.rooms[i+1] = l.rooms[i]
	}
	l.rooms[i+1] = r
}

// Len returns the number of stored rooms.
func (l *Ledger) Len() int {
	return len(l.rooms)
}

// Rooms returns a copy of the sequence, cheapest first.
func (l *Ledger) Rooms() []room.Room {
	return clone(l.rooms)
}

// Search returns the rooms matching the budget [minPrice, maxPrice].
// With roomsRequired <= 1 every room in the window is returned, cheapest first.
// Otherwise only blocks of roomsRequired adjacent rooms on one floor are returned.
func (l *Ledger) Search(roomsRequired int, minPrice, maxPrice decimal.Decimal) []room.Room {
	if len(l.rooms) == 0 {
		return []room.Room{}
	}

	window := PriceWindow(l.rooms, minPrice, maxPrice)
	if roomsRequired <= 1 {
		return clone(window)
	}
	return adjacency.FindBlocks(window, roomsRequired)
}

func clone(rooms []room.Room) []room.Room {
	out := make([]room.Room, len(rooms))
	copy(out, rooms)
	return out
}
