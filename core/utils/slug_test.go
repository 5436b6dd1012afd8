package utils_test

import (
	"testing"

	"room-finder/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"RemovesSpecialCharacters", "@hotel /a*", "hotel-a"},
		{"SpacesToHyphens", "hotel a b", "hotel-a-b"},
		{"Lowercase", "Hotel A", "hotel-a"},
		{"KeepsDigitsAndHyphens", "Grand-Hotel 42", "grand-hotel-42"},
		{"DropsNonASCII", "Hôtel Zoë", "htel-zo"},
		{"Mixed", "@Hotel /A* And B Also", "hotel-a-and-b-also"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slug(tt.in))
		})
	}
}

func TestSlug_CollapsesVariants(t *testing.T) {
	assert.Equal(t, utils.Slug("Hotel A"), utils.Slug("hotel a"))
	assert.Equal(t, utils.Slug("Hotel A"), utils.Slug("Hotel A!"))
}
