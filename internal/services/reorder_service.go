package services

import (
	"context"
	"fmt"
	"sync"

	"aeromart/internal/apperrors"
	"aeromart/internal/logging"
	"aeromart/internal/metrics"
)

// indexStore is the slice of the aircraft repository the reorder engine
// needs. Indexes are 1-based and dense across the whole collection.
type indexStore interface {
	Count(ctx context.Context) (int64, error)
	IndexOf(ctx context.Context, id string) (int, error)
	ShiftIndexesAtOrAbove(ctx context.Context, from, delta int, excludeID string) (int64, error)
	ShiftIndexesBetween(ctx context.Context, lo, hi, delta int, excludeID string) (int64, error)
}

// ReorderService assigns display indexes to listings and shifts the
// siblings so the ordering stays dense. Writes are serialized through
// a mutex; concurrent reorders would otherwise interleave their shift
// updates and corrupt the ordering.
type ReorderService struct {
	store   indexStore
	metrics *metrics.MetricsRegistry
	mu      sync.Mutex
}

func NewReorderService(store indexStore, reg *metrics.MetricsRegistry) *ReorderService {
	return &ReorderService{store: store, metrics: reg}
}

// AssignOnCreate resolves the index for a new listing. requested is nil
// when the client sent no index, which appends at the end. A requested
// position inside the existing range pushes everything at or after it
// down by one.
func (s *ReorderService) AssignOnCreate(ctx context.Context, requested *int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total64, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	total := int(total64)

	if requested == nil {
		s.countReorder("create")
		return total + 1, nil
	}

	idx := *requested
	if idx < 1 {
		return 0, apperrors.NewValidation("Index must be a positive integer greater than 0")
	}
	if idx > total+1 {
		return 0, apperrors.NewValidation(fmt.Sprintf("Index cannot be greater than %d", total+1))
	}

	if idx <= total {
		shifted, err := s.store.ShiftIndexesAtOrAbove(ctx, idx, 1, "")
		if err != nil {
			return 0, err
		}
		s.countShifts(shifted)
	}

	s.countReorder("create")
	return idx, nil
}

// AssignOnUpdate resolves the index for an existing listing identified
// by id. Moving a listing earlier pushes the records between the target
// and its old slot down by one; moving it later pulls them up by one.
// The moving listing is excluded from both shifts.
func (s *ReorderService) AssignOnUpdate(ctx context.Context, id string, requested int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total64, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	total := int(total64)

	if requested < 1 {
		return 0, apperrors.NewValidation("Index must be a positive integer greater than 0")
	}
	if requested > total {
		return 0, apperrors.NewValidation(fmt.Sprintf("Index cannot be greater than %d", total))
	}

	current, err := s.store.IndexOf(ctx, id)
	if err != nil {
		return 0, err
	}

	// A stale or never-assigned index cannot anchor a swap range, so
	// fall back to a plain insertion shift.
	if current < 1 || current > total {
		logging.Warn("reorder: listing has out-of-range index, falling back to insert shift",
			"id", id, "currentIndex", current)
		shifted, err := s.store.ShiftIndexesAtOrAbove(ctx, requested, 1, id)
		if err != nil {
			return 0, err
		}
		s.countShifts(shifted)
		s.countReorder("update")
		return requested, nil
	}

	if requested == current {
		s.countReorder("update")
		return requested, nil
	}

	var shifted int64
	if requested < current {
		shifted, err = s.store.ShiftIndexesBetween(ctx, requested, current-1, 1, id)
	} else {
		shifted, err = s.store.ShiftIndexesBetween(ctx, current+1, requested, -1, id)
	}
	if err != nil {
		return 0, err
	}

	s.countShifts(shifted)
	s.countReorder("update")
	return requested, nil
}

func (s *ReorderService) countReorder(kind string) {
	if s.metrics != nil {
		s.metrics.ReordersTotal.WithLabelValues(kind).Inc()
	}
}

func (s *ReorderService) countShifts(n int64) {
	if s.metrics != nil && n > 0 {
		s.metrics.IndexShiftsTotal.Add(float64(n))
	}
}
