package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordPutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	// Missing key.
	var out doc
	ok, err := repo.Get(ctx, KeyStudentData, &out)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	// Write and read back.
	if err := repo.Put(ctx, KeyStudentData, doc{Name: "asha", Count: 3}); err != nil {
		t.Fatalf("put: %v", err)
	}
	ok, err = repo.Get(ctx, KeyStudentData, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || out.Name != "asha" || out.Count != 3 {
		t.Errorf("got %+v, ok=%v", out, ok)
	}

	// Overwrite wins.
	if err := repo.Put(ctx, KeyStudentData, doc{Name: "asha", Count: 4}); err != nil {
		t.Fatalf("put (overwrite): %v", err)
	}
	if _, err := repo.Get(ctx, KeyStudentData, &out); err != nil {
		t.Fatalf("get (overwrite): %v", err)
	}
	if out.Count != 4 {
		t.Errorf("count = %d, want 4", out.Count)
	}
}

func TestRecordNonObjectValues(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	// The completedContent record is a bare JSON array.
	if err := repo.Put(ctx, KeyCompletedContent, []string{"lesson-1", "lab-2"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got []string
	ok, err := repo.Get(ctx, KeyCompletedContent, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || len(got) != 2 || got[0] != "lesson-1" {
		t.Errorf("got %v, ok=%v", got, ok)
	}
}

func TestRecordDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, KeyStudentProfile, map[string]string{"firstName": "Asha"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, KeyStudentProfile); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var out map[string]string
	ok, err := repo.Get(ctx, KeyStudentProfile, &out)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if ok {
		t.Error("record still present after delete")
	}

	// Deleting a missing key is a no-op.
	if err := repo.Delete(ctx, "never-written"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestXPEventsAppendRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.XPEventRepo()
	ctx := context.Background()

	for i, award := range []XPEventData{
		{AwardID: "a-1", Amount: 50, Reason: "quiz"},
		{AwardID: "a-2", Amount: 25, Reason: "lab"},
		{AwardID: "a-3", Amount: 10, Reason: "blog"},
	} {
		if err := repo.Append(ctx, award); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		if ev.AwardID == "" || ev.Timestamp.IsZero() {
			t.Errorf("event missing fields: %+v", ev)
		}
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.RecordRepo().Put(ctx, KeyStudentData, map[string]int{"level": 3}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.XPEventRepo().Append(ctx, XPEventData{AwardID: "a-1", Amount: 5}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var out map[string]int
	ok, err := s.RecordRepo().Get(ctx, KeyStudentData, &out)
	if err != nil {
		t.Fatalf("get after reset: %v", err)
	}
	if ok {
		t.Error("record survived reset")
	}
	events, err := s.XPEventRepo().Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent after reset: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("%d events survived reset", len(events))
	}
}
