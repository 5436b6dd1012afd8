// Package roomtest provides the reference room set used by tests across packages.
package roomtest

import (
	"room-finder/core/room"
)

// Fixture returns fourteen records for two hotels. Hotel A has rooms 3 and 4 available
// on floor 1 at 25.80 and room 7 on floor 2 at 35.00. Hotel B has rooms 1, 3 and 4
// available on floor 1 at 45.80. Everything else is unavailable.
func Fixture() []room.Fields {
	return []room.Fields{
		record("Hotel A", false, 1, 1, 25.80),
		record("Hotel A", false, 1, 2, 25.80),
		record("Hotel A", true, 1, 3, 25.80),
		record("Hotel A", true, 1, 4, 25.80),
		record("Hotel A", false, 1, 5, 25.80),
		record("Hotel A", false, 2, 6, 30.10),
		record("Hotel A", true, 2, 7, 35.00),
		record("Hotel B", true, 1, 1, 45.80),
		record("Hotel B", false, 1, 2, 45.80),
		record("Hotel B", true, 1, 3, 45.80),
		record("Hotel B", true, 1, 4, 45.80),
		record("Hotel B", false, 1, 5, 45.80),
		record("Hotel B", false, 2, 6, 49.00),
		record("Hotel B", false, 2, 7, 49.00),
	}
}

// Rooms returns Fixture converted to Room values, unavailable ones included.
func Rooms() []room.Room {
	fields := Fixture()
	rooms := make([]room.Room, 0, len(fields))
	for _, f := range fields {
		r, err := room.FromFields(f)
		if err != nil {
			panic(err)
		}
		rooms = append(rooms, r)
	}
	return rooms
}

func record(hotel string, available bool, floor, number int, price float64) room.Fields {
	return room.Fields{
		room.FieldHotel:     hotel,
		room.FieldAvailable: available,
		room.FieldFloor:     floor,
		room.FieldNumber:    number,
		room.FieldPrice:     price,
	}
}
