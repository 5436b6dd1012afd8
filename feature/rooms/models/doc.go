// Package models holds the database representation of rooms.
package models
