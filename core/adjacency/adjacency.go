package adjacency

import (
	"room-finder/core/room"
	"room-finder/core/utils"
)

// partition groups rooms that can form a block.
type partition struct {
	hotel string
	floor int
}

// FindBlocks returns the concatenation of every block of roomsRequired adjacent rooms,
// in the order the blocks are completed. Each block is ordered by room number.
// Rooms sharing a number within one partition break the current run.
func FindBlocks(rooms []room.Room, roomsRequired int) []room.Room {
	blocks := make([]room.Room, 0)
	if roomsRequired < 1 {
		return blocks
	}

	work := make([]room.Room, len(rooms))
	copy(work, rooms)

	runs := make(map[partition][]room.Room)
	for i := range work {
		swapLowestNumber(work, i)
		r := work[i]

		key := partition{hotel: utils.Slug(r.Hotel), floor: r.Floor}
		run := runs[key]
		if len(run) == 0 || run[len(run)-1].Number+1 != r.Number {
			run = []room.Room{r}
		} else {
			run = append(run, r)
		}

		if len(run) == roomsRequired {
			blocks = append(blocks, run...)
			run = nil
		}
		runs[key] = run
	}

	return blocks
}

// LowestNumber returns the index of the lowest-numbered room in rooms[from:].
// The first one wins on ties.
func LowestNumber(rooms []room.Room, from int) int {
	lowest := from
	for i := from + 1; i < len(rooms); i++ {
		if rooms[i].Number < rooms[lowest].Number {
			lowest = i
		}
	}
	return lowest
}

// swapLowestNumber swaps the lowest-numbered room of rooms[from:] into rooms[from].
func swapLowestNumber(rooms []room.Room, from int) {
	if m := LowestNumber(rooms, from); m != from {
		rooms[from], rooms[m] = rooms[m], rooms[from]
	}
}
