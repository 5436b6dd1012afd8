package models

import (
	"fmt"
	"sync"

	"room-finder/core/room"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

// RoomRow represents the 'rooms' table.
type RoomRow struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Hotel     string          `gorm:"column:hotel;size:255;not null;index:idx_rooms_location"`
	Floor     int             `gorm:"column:floor;not null;index:idx_rooms_location"`
	Number    int             `gorm:"column:number;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	Available bool            `gorm:"column:available;not null"`
}

// TableName overrides the table name used by RoomRow.
func (RoomRow) TableName() string {
	return "rooms"
}

// ToRoom converts the row to the domain type.
func (r RoomRow) ToRoom() room.Room {
	return room.Room{
		Hotel:     r.Hotel,
		Floor:     r.Floor,
		Number:    r.Number,
		Price:     r.Price,
		Available: r.Available,
	}
}

// FromRoom converts a domain room to a row without an id.
func FromRoom(r room.Room) RoomRow {
	return RoomRow{
		Hotel:     r.Hotel,
		Floor:     r.Floor,
		Number:    r.Number,
		Price:     r.Price,
		Available: r.Available,
	}
}

var (
	columnsOnce sync.Once
	columns     []string
	columnsErr  error
)

// Columns returns the column names RoomRow maps to, in declaration order.
func Columns() ([]string, error) {
	columnsOnce.Do(func() {
		s, err := schema.Parse(&RoomRow{}, &sync.Map{}, schema.NamingStrategy{})
		if err != nil {
			columnsErr = fmt.Errorf("failed to parse room row schema: %w", err)
			return
		}
		columns = append([]string(nil), s.DBNames...)
	})
	return columns, columnsErr
}
