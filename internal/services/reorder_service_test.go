package services

import (
	"context"
	"testing"

	"aeromart/internal/apperrors"
)

// fakeIndexStore keeps listing indexes in a map keyed by id and applies
// shifts the way the repository would, so tests can assert on the final
// arrangement.
type fakeIndexStore struct {
	indexes map[string]int
}

func newFakeIndexStore(ids ...string) *fakeIndexStore {
	s := &fakeIndexStore{indexes: map[string]int{}}
	for i, id := range ids {
		s.indexes[id] = i + 1
	}
	return s
}

func (s *fakeIndexStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.indexes)), nil
}

func (s *fakeIndexStore) IndexOf(ctx context.Context, id string) (int, error) {
	idx, ok := s.indexes[id]
	if !ok {
		return 0, apperrors.NewNotFound("Aircraft not found")
	}
	return idx, nil
}

func (s *fakeIndexStore) ShiftIndexesAtOrAbove(ctx context.Context, from, delta int, excludeID string) (int64, error) {
	var n int64
	for id, idx := range s.indexes {
		if id == excludeID {
			continue
		}
		if idx >= from {
			s.indexes[id] = idx + delta
			n++
		}
	}
	return n, nil
}

func (s *fakeIndexStore) ShiftIndexesBetween(ctx context.Context, lo, hi, delta int, excludeID string) (int64, error) {
	var n int64
	for id, idx := range s.indexes {
		if id == excludeID {
			continue
		}
		if idx >= lo && idx <= hi {
			s.indexes[id] = idx + delta
			n++
		}
	}
	return n, nil
}

func intPtr(v int) *int { return &v }

func TestAssignOnCreateAppendsByDefault(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnCreate(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 4 {
		t.Errorf("expected index 4, got %d", idx)
	}
	for id, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if store.indexes[id] != want {
			t.Errorf("listing %s moved to %d, expected %d", id, store.indexes[id], want)
		}
	}
}

func TestAssignOnCreateInsertShiftsSiblings(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c", "d")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnCreate(context.Background(), intPtr(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
	want := map[string]int{"a": 1, "b": 3, "c": 4, "d": 5}
	for id, w := range want {
		if store.indexes[id] != w {
			t.Errorf("listing %s at %d, expected %d", id, store.indexes[id], w)
		}
	}
}

func TestAssignOnCreateAtEndOfRange(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnCreate(context.Background(), intPtr(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 4 {
		t.Errorf("expected index 4, got %d", idx)
	}
	// Appending at total+1 must not touch the siblings.
	for id, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if store.indexes[id] != want {
			t.Errorf("listing %s moved to %d, expected %d", id, store.indexes[id], want)
		}
	}
}

func TestAssignOnCreateRejectsOutOfRange(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	svc := NewReorderService(store, nil)

	if _, err := svc.AssignOnCreate(context.Background(), intPtr(0)); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for index 0, got %v", err)
	}
	if _, err := svc.AssignOnCreate(context.Background(), intPtr(5)); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for index 5 with 3 listings, got %v", err)
	}
}

func TestAssignOnUpdateMovesEarlier(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c", "d", "e")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnUpdate(context.Background(), "e", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
	// Listings between the target slot and the old one move down.
	want := map[string]int{"a": 1, "b": 3, "c": 4, "d": 5, "e": 5}
	for _, id := range []string{"a", "b", "c", "d"} {
		if store.indexes[id] != want[id] {
			t.Errorf("listing %s at %d, expected %d", id, store.indexes[id], want[id])
		}
	}
}

func TestAssignOnUpdateMovesLater(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c", "d", "e")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnUpdate(context.Background(), "b", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 4 {
		t.Errorf("expected index 4, got %d", idx)
	}
	want := map[string]int{"a": 1, "c": 2, "d": 3, "e": 5}
	for _, id := range []string{"a", "c", "d", "e"} {
		if store.indexes[id] != want[id] {
			t.Errorf("listing %s at %d, expected %d", id, store.indexes[id], want[id])
		}
	}
}

func TestAssignOnUpdateNoOpWhenUnchanged(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnUpdate(context.Background(), "b", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
	for id, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if store.indexes[id] != want {
			t.Errorf("listing %s moved to %d, expected %d", id, store.indexes[id], want)
		}
	}
}

func TestAssignOnUpdateRejectsOutOfRange(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	svc := NewReorderService(store, nil)

	if _, err := svc.AssignOnUpdate(context.Background(), "a", 0); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for index 0, got %v", err)
	}
	// Unlike create, total+1 is out of range on update.
	if _, err := svc.AssignOnUpdate(context.Background(), "a", 4); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for index 4 with 3 listings, got %v", err)
	}
}

func TestAssignOnUpdateFallsBackWhenCurrentIndexInvalid(t *testing.T) {
	store := newFakeIndexStore("a", "b", "c")
	store.indexes["c"] = 99
	svc := NewReorderService(store, nil)

	idx, err := svc.AssignOnUpdate(context.Background(), "c", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	// Siblings at or above the slot shift down as on insert.
	if store.indexes["a"] != 2 || store.indexes["b"] != 3 {
		t.Errorf("expected a=2 b=3, got a=%d b=%d", store.indexes["a"], store.indexes["b"])
	}
}
