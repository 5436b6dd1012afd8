package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToInt converts decoded record values to int using explicit type switching.
// Floats are accepted only when they hold a whole number, and values outside the
// int range are rejected.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return intFromInt64(v)
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return intFromUint64(uint64(v))
	case uint64:
		return intFromUint64(v)
	case uint32:
		return intFromInt64(int64(v))
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		return intFromFloat(v)
	case float32:
		return intFromFloat(float64(v))
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v.String())
		}
		return intFromInt64(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, fmt.Errorf("unsupported type %T", val)
	}
}

func intFromInt64(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("%d is out of range", v)
	}
	return int(v), nil
}

func intFromUint64(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("%d is out of range", v)
	}
	return int(v), nil
}

func intFromFloat(v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%v is not a whole number", v)
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if v < math.MinInt || v >= math.MaxInt {
		return 0, fmt.Errorf("%v is out of range", v)
	}
	return int(v), nil
}

// ToString converts text values to string. Anything that is not text is rejected.
func ToString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T", val)
	}
}

// ToBool converts various types to bool.
// It handles bool, 0/1 integers (json.Number included) and the strings accepted
// by strconv.ParseBool.
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, json.Number:
		i, err := ToInt(v)
		if err != nil {
			return false, fmt.Errorf("%v is not a boolean", v)
		}
		switch i {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("%d is not a boolean", i)
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%q is not a boolean", v)
		}
		return b, nil
	case []byte:
		return ToBool(string(v))
	default:
		return false, fmt.Errorf("unsupported type %T", val)
	}
}

// ToDecimal converts numeric values and numeric strings to a decimal.
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat32(v), nil
	case json.Number:
		return parseDecimal(v.String())
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	default:
		i, err := ToInt(v)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(int64(i)), nil
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}
