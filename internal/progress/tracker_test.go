package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/arjunk/stemly/internal/achievements"
	"github.com/arjunk/stemly/internal/profile"
	"github.com/arjunk/stemly/internal/store"
)

// fakeRecords is an in-memory RecordRepo that keeps the serialized
// form, so corruption and write failures can be injected.
type fakeRecords struct {
	data     map[string]json.RawMessage
	failPuts bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{data: make(map[string]json.RawMessage)}
}

func (f *fakeRecords) Put(_ context.Context, key string, v any) error {
	if f.failPuts {
		return errors.New("disk full")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeRecords) Get(_ context.Context, key string, out any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal record %q: %w", key, err)
	}
	return true, nil
}

func (f *fakeRecords) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

// fakeEvents collects appended XP events.
type fakeEvents struct {
	appended []store.XPEventData
}

func (f *fakeEvents) Append(_ context.Context, data store.XPEventData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeEvents) Recent(_ context.Context, limit int) ([]store.XPEvent, error) {
	return nil, nil
}

func newTestTracker(records store.RecordRepo) *Tracker {
	return NewTracker(records, nil,
		WithWarnWriter(io.Discard),
		WithClock(func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestUpdateProfileRecomputesDerived(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	first := "Asha"
	st := tr.UpdateProfile(ctx, profile.Patch{FirstName: &first})

	if st.ProfileCompletion != 6 {
		t.Errorf("ProfileCompletion = %d, want 6", st.ProfileCompletion)
	}
	if st.Credits != 0 {
		t.Errorf("Credits = %d, want 0 below first tier", st.Credits)
	}
	if st.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped")
	}
}

func TestUpdateProfileEmptyPatchIdempotent(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	city := "Austin"
	before := tr.UpdateProfile(ctx, profile.Patch{City: &city})
	after := tr.UpdateProfile(ctx, profile.Patch{})

	if after.ProfileCompletion != before.ProfileCompletion {
		t.Errorf("empty patch changed completion: %d -> %d",
			before.ProfileCompletion, after.ProfileCompletion)
	}
	if after.Credits != before.Credits {
		t.Errorf("empty patch changed credits: %d -> %d",
			before.Credits, after.Credits)
	}
}

func TestProfileCreditsFollowTier(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	// Fill 8 of 16 fields: 50% completion, the 20-credit tier.
	patch := profile.Patch{}
	for i, p := range []**string{
		&patch.FirstName, &patch.LastName, &patch.Email, &patch.Phone,
		&patch.City, &patch.State, &patch.Country, &patch.Bio,
	} {
		v := fmt.Sprintf("value-%d", i)
		*p = &v
	}

	st := tr.UpdateProfile(ctx, patch)
	if st.ProfileCompletion != 50 {
		t.Fatalf("ProfileCompletion = %d, want 50", st.ProfileCompletion)
	}
	if st.Credits != 20 {
		t.Errorf("Credits = %d, want 20 at the 50%% tier", st.Credits)
	}

	// Clearing a field drops below the tier; profile-derived credits
	// shrink with it.
	empty := ""
	st = tr.UpdateProfile(ctx, profile.Patch{Bio: &empty})
	if st.ProfileCompletion != 44 {
		t.Fatalf("ProfileCompletion = %d, want 44", st.ProfileCompletion)
	}
	if st.Credits != 10 {
		t.Errorf("Credits = %d, want 10 at the 30%% tier", st.Credits)
	}
}

func TestAddCreditsIndependentOfProfile(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	if _, err := tr.AddCredits(ctx, 40); err != nil {
		t.Fatalf("AddCredits: %v", err)
	}

	// A profile edit reaching the 30% tier adds the tier credits on
	// top of the direct award.
	patch := profile.Patch{}
	for _, p := range []**string{
		&patch.FirstName, &patch.LastName, &patch.Email,
		&patch.Phone, &patch.City,
	} {
		v := "x"
		*p = &v
	}
	st := tr.UpdateProfile(ctx, patch)

	if st.ProfileCompletion != 31 {
		t.Fatalf("ProfileCompletion = %d, want 31", st.ProfileCompletion)
	}
	if st.Credits != 50 {
		t.Errorf("Credits = %d, want 40 direct + 10 tier", st.Credits)
	}
}

func TestAppendToListField(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	st := tr.AppendToListField(ctx, profile.FieldSubjects, "  physics  ")
	if len(st.Profile.Subjects) != 1 || st.Profile.Subjects[0] != "physics" {
		t.Errorf("Subjects = %v, want [physics]", st.Profile.Subjects)
	}

	// Duplicates are allowed.
	st = tr.AppendToListField(ctx, profile.FieldSubjects, "physics")
	if len(st.Profile.Subjects) != 2 {
		t.Errorf("Subjects = %v, want duplicate kept", st.Profile.Subjects)
	}

	// Whitespace-only values are a no-op.
	st = tr.AppendToListField(ctx, profile.FieldSubjects, "   ")
	if len(st.Profile.Subjects) != 2 {
		t.Errorf("blank append mutated list: %v", st.Profile.Subjects)
	}
}

func TestRemoveFromListField(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	tr.AppendToListField(ctx, profile.FieldInterests, "rockets")
	tr.AppendToListField(ctx, profile.FieldInterests, "chess")

	// Out-of-range index is a no-op, no panic, no truncation.
	st := tr.RemoveFromListField(ctx, profile.FieldInterests, 99)
	if len(st.Profile.Interests) != 2 {
		t.Fatalf("out-of-range remove changed list: %v", st.Profile.Interests)
	}
	st = tr.RemoveFromListField(ctx, profile.FieldInterests, -1)
	if len(st.Profile.Interests) != 2 {
		t.Fatalf("negative index changed list: %v", st.Profile.Interests)
	}

	st = tr.RemoveFromListField(ctx, profile.FieldInterests, 0)
	if len(st.Profile.Interests) != 1 || st.Profile.Interests[0] != "chess" {
		t.Errorf("Interests = %v, want [chess]", st.Profile.Interests)
	}
}

func TestAddXP(t *testing.T) {
	records := newFakeRecords()
	events := &fakeEvents{}
	tr := NewTracker(records, events,
		WithWarnWriter(io.Discard),
		WithClock(func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
	ctx := context.Background()

	st, err := tr.AddXP(ctx, 250, "finished quiz")
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	if st.CurrentXP != 50 || st.Level != 3 || st.RequiredXP != 300 {
		t.Errorf("level state = %+v", st.LevelState)
	}
	if st.TotalXP != 250 {
		t.Errorf("TotalXP = %d, want 250", st.TotalXP)
	}
	if st.Current != 1 || st.DaysActive != 1 {
		t.Errorf("streak = %+v, want first-day activity", st.Streak)
	}

	if len(events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(events.appended))
	}
	ev := events.appended[0]
	if ev.Amount != 250 || ev.Reason != "finished quiz" || ev.AwardID == "" {
		t.Errorf("event = %+v", ev)
	}
}

func TestAddXPZeroNoOp(t *testing.T) {
	records := newFakeRecords()
	tr := newTestTracker(records)
	ctx := context.Background()

	before := tr.State()
	st, err := tr.AddXP(ctx, 0, "nothing")
	if err != nil {
		t.Fatalf("AddXP(0): %v", err)
	}
	if st.LevelState != before.LevelState || st.TotalXP != before.TotalXP ||
		st.Streak != before.Streak || !st.LastUpdated.Equal(before.LastUpdated) {
		t.Errorf("AddXP(0) changed state: %+v -> %+v", before, st)
	}
	if len(records.data) != 0 {
		t.Error("AddXP(0) persisted")
	}
}

func TestAddXPNegativeRejected(t *testing.T) {
	tr := newTestTracker(newFakeRecords())

	_, err := tr.AddXP(context.Background(), -10, "oops")
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("err = %v, want ErrNegativeAmount", err)
	}

	_, err = tr.AddCredits(context.Background(), -5)
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("AddCredits err = %v, want ErrNegativeAmount", err)
	}
}

func TestCompleteContent(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	st, err := tr.CompleteContent(ctx, "lesson-circuits-1", 50)
	if err != nil {
		t.Fatalf("CompleteContent: %v", err)
	}
	if st.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want 50", st.TotalXP)
	}

	// Completing the same id again never double-pays.
	st, err = tr.CompleteContent(ctx, "lesson-circuits-1", 50)
	if err != nil {
		t.Fatalf("CompleteContent repeat: %v", err)
	}
	if st.TotalXP != 50 {
		t.Errorf("TotalXP = %d after repeat, want 50", st.TotalXP)
	}
	if got := tr.CompletedContent(); len(got) != 1 {
		t.Errorf("CompletedContent = %v", got)
	}
}

func TestStatsFromContentLedger(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	tr.CompleteContent(ctx, "lesson-1", 10)
	tr.CompleteContent(ctx, "lesson-2", 10)
	tr.CompleteContent(ctx, "lab-1", 20)
	tr.CompleteContent(ctx, "blog-gravity", 5)

	stats := tr.Stats()
	if stats.LessonsCompleted != 2 || stats.LabsCompleted != 1 || stats.BlogsRead != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalXP != 45 {
		t.Errorf("TotalXP = %d, want 45", stats.TotalXP)
	}
}

func TestRefreshBadges(t *testing.T) {
	tr := newTestTracker(newFakeRecords())
	ctx := context.Background()

	tr.CompleteContent(ctx, "lesson-1", 10)
	st := tr.RefreshBadges(ctx, achievements.Catalog())

	// lesson >= 1 unlocks First Steps; first-day streak stays below
	// every consistency threshold.
	if st.Badges != 1 {
		t.Errorf("Badges = %d, want 1", st.Badges)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	tr := newTestTracker(records)
	first := "Asha"
	tr.UpdateProfile(ctx, profile.Patch{FirstName: &first})
	tr.AppendToListField(ctx, profile.FieldSubjects, "physics")
	tr.AddXP(ctx, 250, "quiz")
	tr.AddCredits(ctx, 15)
	want := tr.State()

	// A fresh tracker over the same records reproduces the state.
	reloaded := newTestTracker(records)
	got := reloaded.Load(ctx)

	if got.LevelState != want.LevelState {
		t.Errorf("level state = %+v, want %+v", got.LevelState, want.LevelState)
	}
	if got.TotalXP != want.TotalXP || got.Credits != want.Credits {
		t.Errorf("totals = (%d,%d), want (%d,%d)",
			got.TotalXP, got.Credits, want.TotalXP, want.Credits)
	}
	if got.ProfileCompletion != want.ProfileCompletion {
		t.Errorf("completion = %d, want %d", got.ProfileCompletion, want.ProfileCompletion)
	}
	if got.Profile.FirstName != "Asha" || len(got.Profile.Subjects) != 1 {
		t.Errorf("profile = %+v", got.Profile)
	}
	if got.Streak != want.Streak {
		t.Errorf("streak = %+v, want %+v", got.Streak, want.Streak)
	}
}

func TestLoadRecomputesStaleDerivedValues(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	// Seed a profile record whose derived pair predates the current
	// calculator: claims 10% / 0 credits for a half-complete profile.
	stale := map[string]any{
		"firstName": "Asha", "lastName": "Rao", "email": "a@b.c",
		"phone": "1", "city": "Austin", "state": "TX", "country": "USA",
		"bio":               "hi",
		"profileCompletion": 10,
		"credits":           0,
	}
	if err := records.Put(ctx, store.KeyStudentProfile, stale); err != nil {
		t.Fatal(err)
	}

	tr := newTestTracker(records)
	st := tr.Load(ctx)

	if st.ProfileCompletion != 50 {
		t.Errorf("ProfileCompletion = %d, want recomputed 50", st.ProfileCompletion)
	}
	if st.Credits != 20 {
		t.Errorf("Credits = %d, want recomputed tier 20", st.Credits)
	}
}

func TestLoadMalformedFallsBackToZeroState(t *testing.T) {
	records := newFakeRecords()
	records.data[store.KeyStudentData] = json.RawMessage(`{not json`)

	tr := newTestTracker(records)
	st := tr.Load(context.Background())

	if st.Level != 1 || st.RequiredXP != 100 || st.CurrentXP != 0 {
		t.Errorf("fallback state = %+v", st.LevelState)
	}
}

func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	records := newFakeRecords()
	records.failPuts = true
	tr := newTestTracker(records)

	st, err := tr.AddXP(context.Background(), 100, "quiz")
	if err != nil {
		t.Fatalf("AddXP surfaced persistence error: %v", err)
	}
	if st.Level != 2 {
		t.Errorf("Level = %d, want in-memory state applied", st.Level)
	}
}
