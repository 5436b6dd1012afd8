package rooms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuery is wrapped by every ParseQuery failure.
var ErrInvalidQuery = errors.New("invalid search query")

// ParseQuery builds a Query from its textual parts. An empty rooms value means 1,
// an empty min means 0. max is required.
func ParseQuery(roomsRaw, minRaw, maxRaw string) (Query, error) {
	q := Query{Rooms: 1, Min: decimal.Zero}

	if roomsRaw = strings.TrimSpace(roomsRaw); roomsRaw != "" {
		n, err := strconv.Atoi(roomsRaw)
		if err != nil {
			return Query{}, fmt.Errorf("%w: rooms %q is not an integer", ErrInvalidQuery, roomsRaw)
		}
		if n < 1 {
			return Query{}, fmt.Errorf("%w: rooms must be at least 1", ErrInvalidQuery)
		}
		q.Rooms = n
	}

	if minRaw = strings.TrimSpace(minRaw); minRaw != "" {
		d, err := decimal.NewFromString(minRaw)
		if err != nil {
			return Query{}, fmt.Errorf("%w: min %q is not a number", ErrInvalidQuery, minRaw)
		}
		q.Min = d
	}

	maxRaw = strings.TrimSpace(maxRaw)
	if maxRaw == "" {
		return Query{}, fmt.Errorf("%w: max is required", ErrInvalidQuery)
	}
	d, err := decimal.NewFromString(maxRaw)
	if err != nil {
		return Query{}, fmt.Errorf("%w: max %q is not a number", ErrInvalidQuery, maxRaw)
	}
	q.Max = d

	if q.Min.GreaterThan(q.Max) {
		return Query{}, fmt.Errorf("%w: min %s is greater than max %s", ErrInvalidQuery, q.Min, q.Max)
	}
	return q, nil
}
