package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"room-finder/core/room"
	"room-finder/core/utils"
)

// Key identifies a room location: hotel slug, floor and number.
func Key(r room.Room) string {
	return utils.Slug(r.Hotel) + "/" + strconv.Itoa(r.Floor) + "/" + strconv.Itoa(r.Number)
}

// index maps location keys to rooms. A location seen twice is recorded in dupes.
type index struct {
	rooms map[string]room.Room
	dupes map[string]struct{}
}

func buildIndex(rooms []room.Room) index {
	idx := index{
		rooms: make(map[string]room.Room, len(rooms)),
		dupes: make(map[string]struct{}),
	}
	for _, r := range rooms {
		key := Key(r)
		if _, exists := idx.rooms[key]; exists {
			idx.dupes[key] = struct{}{}
			continue
		}
		idx.rooms[key] = r
	}
	return idx
}

// Compare loads both sources concurrently and reports every location that is
// missing on one side, duplicated, or holds different prices or availability.
func Compare(ctx context.Context, left, right Source) (*Report, error) {
	var (
		leftRooms, rightRooms []room.Room
		leftErr, rightErr     error
		wg                    sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		leftRooms, leftErr = left.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		rightRooms, rightErr = right.Load(ctx)
	}()
	wg.Wait()

	if leftErr != nil {
		return nil, fmt.Errorf("failed to load %s: %w", left.Name(), leftErr)
	}
	if rightErr != nil {
		return nil, fmt.Errorf("failed to load %s: %w", right.Name(), rightErr)
	}

	return compareIndexes(left.Name(), right.Name(), buildIndex(leftRooms), buildIndex(rightRooms)), nil
}

func compareIndexes(leftName, rightName string, left, right index) *Report {
	union := make(map[string]struct{}, len(left.rooms)+len(right.rooms))
	for key := range left.rooms {
		union[key] = struct{}{}
	}
	for key := range right.rooms {
		union[key] = struct{}{}
	}

	report := &Report{
		Left:    leftName,
		Right:   rightName,
		Results: []Result{},
	}
	report.Summary.TotalRooms = len(union)

	for key := range union {
		l, inLeft := left.rooms[key]
		r, inRight := right.rooms[key]

		result := Result{
			Key:          key,
			LeftPresent:  inLeft,
			RightPresent: inRight,
			Mismatch:     []string{},
		}
		if inLeft {
			result.Hotel, result.Floor, result.Number = l.Hotel, l.Floor, l.Number
		} else {
			result.Hotel, result.Floor, result.Number = r.Hotel, r.Floor, r.Number
		}

		if _, dup := left.dupes[key]; dup {
			result.Mismatch = append(result.Mismatch, "duplicate in "+leftName)
		}
		if _, dup := right.dupes[key]; dup {
			result.Mismatch = append(result.Mismatch, "duplicate in "+rightName)
		}
		if inLeft && inRight {
			result.Mismatch = append(result.Mismatch, compareFields(leftName, rightName, l, r)...)
		}

		switch {
		case !inLeft:
			report.Summary.MissingLeft++
		case !inRight:
			report.Summary.MissingRight++
		}
		if len(result.Mismatch) > 0 {
			report.Summary.Mismatches++
		}

		if !inLeft || !inRight || len(result.Mismatch) > 0 {
			report.Results = append(report.Results, result)
		}
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Key < report.Results[j].Key
	})
	report.InSync = len(report.Results) == 0
	return report
}

func compareFields(leftName, rightName string, l, r room.Room) []string {
	var mismatch []string
	if !l.Price.Equal(r.Price) {
		mismatch = append(mismatch, fmt.Sprintf("price: %s=%s %s=%s", leftName, l.Price, rightName, r.Price))
	}
	if l.Available != r.Available {
		mismatch = append(mismatch, fmt.Sprintf("available: %s=%t %s=%t", leftName, l.Available, rightName, r.Available))
	}
	if l.Hotel != r.Hotel {
		mismatch = append(mismatch, fmt.Sprintf("hotel: %s=%q %s=%q", leftName, l.Hotel, rightName, r.Hotel))
	}
	return mismatch
}
