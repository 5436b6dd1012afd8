package room

import (
	"room-finder/core/utils"

	"github.com/shopspring/decimal"
)

// Record field names.
const (
	FieldAvailable = "available"
	FieldFloor     = "floor"
	FieldHotel     = "hotel"
	FieldNumber    = "number"
	FieldPrice     = "price"
)

// RequiredFields is the exact field set of a record, sorted.
var RequiredFields = []string{FieldAvailable, FieldFloor, FieldHotel, FieldNumber, FieldPrice}

// Fields is a raw room record as decoded from a request body or a fixture file.
type Fields map[string]any

// Room is a single hotel room. Two rooms are adjacent when they share hotel and floor
// and their numbers differ by exactly one.
type Room struct {
	Hotel     string          `json:"hotel" yaml:"hotel"`
	Floor     int             `json:"floor" yaml:"floor"`
	Number    int             `json:"number" yaml:"number"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Available bool            `json:"available" yaml:"available"`
}

// FromFields validates a raw record and converts it to a Room.
func FromFields(fields Fields) (Room, error) {
	if err := Validate(fields); err != nil {
		return Room{}, err
	}

	hotel, err := utils.ToString(fields[FieldHotel])
	if err != nil {
		return Room{}, fieldError(FieldHotel, err)
	}
	floor, err := utils.ToInt(fields[FieldFloor])
	if err != nil {
		return Room{}, fieldError(FieldFloor, err)
	}
	number, err := utils.ToInt(fields[FieldNumber])
	if err != nil {
		return Room{}, fieldError(FieldNumber, err)
	}
	price, err := utils.ToDecimal(fields[FieldPrice])
	if err != nil {
		return Room{}, fieldError(FieldPrice, err)
	}
	if price.IsNegative() {
		return Room{}, &ValidationError{Field: FieldPrice, Reason: "must not be negative"}
	}
	available, err := utils.ToBool(fields[FieldAvailable])
	if err != nil {
		return Room{}, fieldError(FieldAvailable, err)
	}

	return Room{
		Hotel:     hotel,
		Floor:     floor,
		Number:    number,
		Price:     price,
		Available: available,
	}, nil
}

func fieldError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: err.Error()}
}
