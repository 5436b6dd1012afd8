package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"room-finder/core/cache"
	"room-finder/core/ledger"
	"room-finder/core/room"
	"room-finder/core/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Query is a room search.
type Query struct {
	Rooms int
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// AddResult summarizes a batch insert.
type AddResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// InsertError reports which record of a batch was rejected.
type InsertError struct {
	Index int
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}

// Service serializes access to the room ledger and feeds it from the configured sources.
type Service struct {
	mu     sync.RWMutex
	ledger *ledger.Ledger
	// generation names the current ledger contents in cache keys. It is replaced on
	// every change and is unique across processes sharing one cache.
	generation string

	client     storage.Client
	storageCfg storage.Config
	db         *gorm.DB
	cache      cache.Cache
	logger     *zap.Logger
	group      singleflight.Group
}

// NewService creates a service with an empty ledger. Client, db and cache may be nil.
func NewService(client storage.Client, storageCfg storage.Config, db *gorm.DB, c cache.Cache, logger *zap.Logger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ledger:     ledger.New(),
		generation: uuid.NewString(),
		client:     client,
		storageCfg: storageCfg,
		db:         db,
		cache:      c,
		logger:     logger,
	}
}

// Add inserts records in order and stops at the first invalid one.
// Records before the failing one stay inserted.
func (s *Service) Add(records []room.Fields) (AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res AddResult
	defer func() {
		if res.Inserted > 0 {
			s.generation = uuid.NewString()
		}
	}()

	for i, fields := range records {
		before := s.ledger.Len()
		if err := s.ledger.Insert(fields); err != nil {
			res.Total = s.ledger.Len()
			return res, &InsertError{Index: i, Err: err}
		}
		if s.ledger.Len() > before {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}
	res.Total = s.ledger.Len()
	return res, nil
}

// Rooms returns the stored rooms, cheapest first.
func (s *Service) Rooms() []room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Rooms()
}

// Len returns the number of stored rooms.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Len()
}

// Search runs a query against the ledger. Results are cached per ledger generation;
// cache failures are logged and the ledger answers instead.
func (s *Service) Search(ctx context.Context, q Query) []room.Room {
	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	key := cache.Key("search", generation, strconv.Itoa(q.Rooms), q.Min.String(), q.Max.String())
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Search cache read failed", zap.Error(err))
	} else if ok {
		var cached []room.Room
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached
		}
		s.logger.Warn("Discarding malformed cached search result", zap.String("key", key))
	}

	s.mu.RLock()
	result := s.ledger.Search(q.Rooms, q.Min, q.Max)
	current := s.generation
	s.mu.RUnlock()

	// A write between the two locks made the key stale.
	if current == generation {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, data); err != nil {
				s.logger.Warn("Search cache write failed", zap.Error(err))
			}
		}
	}
	return result
}

// Reload replaces the ledger with the rooms of a source and returns the new room count.
// Concurrent reloads of the same source share one load.
func (s *Service) Reload(ctx context.Context, source string) (int, error) {
	v, err, shared := s.group.Do(source, func() (interface{}, error) {
		next, err := s.build(ctx, source)
		if err != nil {
			return 0, err
		}

		s.mu.Lock()
		s.ledger = next
		s.generation = uuid.NewString()
		s.mu.Unlock()

		return next.Len(), nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Rooms reloaded",
		zap.String("source", source),
		zap.Int("rooms", v.(int)),
		zap.Bool("shared", shared),
	)
	return v.(int), nil
}

func (s *Service) build(ctx context.Context, source string) (*ledger.Ledger, error) {
	next := ledger.New()

	switch source {
	case SourceDatabase:
		rooms, err := LoadFromDatabase(ctx, s.db)
		if err != nil {
			return nil, err
		}
		for _, r := range rooms {
			next.InsertRoom(r)
		}
	case SourceStorage:
		records, err := LoadFromStorage(ctx, s.client, s.storageCfg)
		if err != nil {
			return nil, err
		}
		for i, fields := range records {
			if err := next.Insert(fields); err != nil {
				return nil, &InsertError{Index: i, Err: err}
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	return next, nil
}

// Snapshot writes the stored rooms to the configured rooms object and returns how many were written.
func (s *Service) Snapshot(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("%w: storage not configured", ErrSourceUnavailable)
	}

	rooms := s.Rooms()
	data, err := EncodeJSON(rooms)
	if err != nil {
		return 0, fmt.Errorf("failed to encode rooms: %w", err)
	}

	if err := storage.WriteObject(ctx, s.client, s.storageCfg.Bucket, s.storageCfg.RoomsObject, "application/json", data); err != nil {
		return 0, err
	}
	return len(rooms), nil
}
