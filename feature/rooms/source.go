package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"room-finder/core/room"
	"room-finder/core/storage"
	"room-finder/feature/rooms/models"

	"github.com/goccy/go-yaml"
	"gorm.io/gorm"
)

var (
	// ErrUnknownSource is returned for a reload source other than database or storage.
	ErrUnknownSource = errors.New("unknown room source")
	// ErrSourceUnavailable is returned when the requested source is not configured.
	ErrSourceUnavailable = errors.New("room source unavailable")
)

const (
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// LoadFromDatabase reads every row of the rooms table in id order.
func LoadFromDatabase(ctx context.Context, db *gorm.DB) ([]room.Room, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: database not connected", ErrSourceUnavailable)
	}

	var rows []models.RoomRow
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}

	out := make([]room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToRoom())
	}
	return out, nil
}

// LoadFromStorage reads the JSON room snapshot object.
func LoadFromStorage(ctx context.Context, client storage.Client, cfg storage.Config) ([]room.Fields, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: storage not configured", ErrSourceUnavailable)
	}

	data, err := storage.ReadObject(ctx, client, cfg.Bucket, cfg.RoomsObject)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(data)
}

// DecodeJSON decodes a JSON array of room records. Numbers are kept as json.Number
// so prices are not rounded through float64.
func DecodeJSON(data []byte) ([]room.Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []room.Fields
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode room records: %w", err)
	}
	return records, nil
}

// LoadFile reads room records from a YAML or JSON file.
func LoadFile(path string) ([]room.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []room.Fields
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// EncodeJSON renders rooms as the JSON record array LoadFromStorage reads.
func EncodeJSON(rooms []room.Room) ([]byte, error) {
	if rooms == nil {
		rooms = []room.Room{}
	}
	return json.Marshal(rooms)
}

// DatabaseSource exposes the rooms table as a reconcile.Source.
type DatabaseSource struct {
	DB *gorm.DB
}

func (DatabaseSource) Name() string { return SourceDatabase }

func (s DatabaseSource) Load(ctx context.Context) ([]room.Room, error) {
	return LoadFromDatabase(ctx, s.DB)
}

// StorageSource exposes the rooms snapshot as a reconcile.Source.
type StorageSource struct {
	Client storage.Client
	Config storage.Config
}

func (StorageSource) Name() string { return SourceStorage }

func (s StorageSource) Load(ctx context.Context) ([]room.Room, error) {
	records, err := LoadFromStorage(ctx, s.Client, s.Config)
	if err != nil {
		return nil, err
	}

	out := make([]room.Room, 0, len(records))
	for i, fields := range records {
		r, err := room.FromFields(fields)
		if err != nil {
			return nil, &InsertError{Index: i, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}
