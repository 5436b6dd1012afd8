package utils_test

import (
	"encoding/json"
	"math"
	"testing"

	"room-finder/core/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    int
		wantErr bool
	}{
		{"Int", 3, 3, false},
		{"Int64", int64(-2), -2, false},
		{"Uint64", uint64(7), 7, false},
		{"WholeFloat", 4.0, 4, false},
		{"FractionalFloat", 4.5, 0, true},
		{"JSONNumber", json.Number("12"), 12, false},
		{"String", " 5 ", 5, false},
		{"BadString", "five", 0, true},
		{"Bytes", []byte("9"), 9, false},
		{"Bool", true, 0, true},
		{"Nil", nil, 0, true},
		{"Uint64Overflow", uint64(math.MaxUint64), 0, true},
		{"FloatOverflow", 1e19, 0, true},
		{"NaN", math.NaN(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToInt(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    bool
		wantErr bool
	}{
		{"True", true, true, false},
		{"False", false, false, false},
		{"One", 1, true, false},
		{"Zero", uint64(0), false, false},
		{"Two", 2, false, true},
		{"StringTrue", "true", true, false},
		{"StringZero", "0", false, false},
		{"StringJunk", "yes please", false, true},
		{"Float", 1.0, false, true},
		{"JSONNumberOne", json.Number("1"), true, false},
		{"JSONNumberZero", json.Number("0"), false, false},
		{"JSONNumberTwo", json.Number("2"), false, true},
		{"JSONNumberFraction", json.Number("0.5"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToBool(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	s, err := utils.ToString("Hotel A")
	assert.NoError(t, err)
	assert.Equal(t, "Hotel A", s)

	s, err = utils.ToString([]byte("Hotel B"))
	assert.NoError(t, err)
	assert.Equal(t, "Hotel B", s)

	_, err = utils.ToString(42)
	assert.Error(t, err)
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    string
		wantErr bool
	}{
		{"Float", 25.80, "25.8", false},
		{"Int", 30, "30", false},
		{"Uint64", uint64(49), "49", false},
		{"String", "45.80", "45.8", false},
		{"JSONNumber", json.Number("35.00"), "35", false},
		{"Decimal", decimal.RequireFromString("1.5"), "1.5", false},
		{"BadString", "cheap", "", true},
		{"Bool", false, "", true},
		{"NaN", math.NaN(), "", true},
		{"PosInf", math.Inf(1), "", true},
		{"NegInf", math.Inf(-1), "", true},
		{"Float32NaN", float32(math.NaN()), "", true},
		{"Float32Inf", float32(math.Inf(1)), "", true},
		{"NaNString", "NaN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToDecimal(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
