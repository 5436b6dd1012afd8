// Package utils provides common utility functions for the room-finder application.
// It includes strict converters for decoded record values (ToInt, ToBool, ToString,
// ToDecimal) and the hotel name Slug used to partition rooms during adjacency search.
package utils
