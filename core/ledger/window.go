package ledger

import (
	"room-finder/core/room"

	"github.com/shopspring/decimal"
)

// PriceWindow returns the contiguous part of a price-sorted sequence whose prices lie
// in [minPrice, maxPrice]. The result aliases rooms; callers that hand it out must copy it.
func PriceWindow(rooms []room.Room, minPrice, maxPrice decimal.Decimal) []room.Room {
	if len(rooms) == 0 {
		return []room.Room{}
	}

	i := LowerBound(rooms, minPrice)
	j := UpperBound(rooms, i, maxPrice)
	if j < i {
		return rooms[i:i]
	}
	return rooms[i : j+1]
}

// LowerBound returns the smallest index whose price is >= minPrice, or len(rooms) if none is.
func LowerBound(rooms []room.Room, minPrice decimal.Decimal) int {
	lo, hi := 0, len(rooms)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if minPrice.LessThanOrEqual(rooms[mid].Price) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// UpperBound returns the largest index at or after from whose price is <= maxPrice, or
// from-1 if there is none. The midpoint is biased to the upper half,
// mid = floor((lo+hi)/2) + 1, so the window always shrinks and lo == hi ends the search.
func UpperBound(rooms []room.Room, from int, maxPrice decimal.Decimal) int {
	lo, hi := from-1, len(rooms)-1
	for lo < hi {
		mid := lo + (hi-lo)/2 + 1
		if maxPrice.LessThan(rooms[mid].Price) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return lo
}
