package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arjunk/stemly/internal/achievements"
	"github.com/arjunk/stemly/internal/profile"
	"github.com/arjunk/stemly/internal/store"
)

// profileRecord is the studentProfile persistence document: the raw
// snapshot plus its derived completion, tier credits, and timestamp.
type profileRecord struct {
	profile.Snapshot
	ProfileCompletion int       `json:"profileCompletion"`
	Credits           int       `json:"credits"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Tracker owns the canonical in-memory State and is the only
// component that writes the persisted records. All mutations run
// synchronously: the returned State reflects what was persisted (or,
// when persistence fails, the in-memory state that stays
// authoritative for the session).
//
// Tracker is constructor-injected, never a package-level singleton,
// so tests can run isolated instances side by side.
type Tracker struct {
	records store.RecordRepo
	events  store.XPEventRepo
	now     func() time.Time
	warnw   io.Writer

	state   State
	content []string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Tests use this to make
// lastUpdated and streak arithmetic deterministic.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithWarnWriter redirects persistence warnings away from stderr.
func WithWarnWriter(w io.Writer) Option {
	return func(t *Tracker) { t.warnw = w }
}

// NewTracker creates a Tracker over the given record repo. The XP
// event repo is optional; with nil events the award log is skipped.
func NewTracker(records store.RecordRepo, events store.XPEventRepo, opts ...Option) *Tracker {
	t := &Tracker{
		records: records,
		events:  events,
		now:     time.Now,
		warnw:   os.Stderr,
		state:   NewState(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns a copy of the current canonical state.
func (t *Tracker) State() State {
	return t.state
}

// CompletedContent returns the completed-content ids in completion
// order.
func (t *Tracker) CompletedContent() []string {
	return slices.Clone(t.content)
}

// Load rehydrates the tracker from persisted records. Corrupt or
// missing records fall back to a fresh zero state; derived profile
// values (completion, tier credits) are recomputed before the
// persisted state is adopted, so a stale pair left behind by an older
// calculator cannot survive a restart.
func (t *Tracker) Load(ctx context.Context) State {
	t.state = NewState()
	t.content = nil

	var data State
	ok, err := t.records.Get(ctx, store.KeyStudentData, &data)
	switch {
	case err != nil:
		t.warnf("discarding corrupt %s record: %v", store.KeyStudentData, err)
	case ok:
		t.state = data
	}

	var prof profileRecord
	ok, err = t.records.Get(ctx, store.KeyStudentProfile, &prof)
	switch {
	case err != nil:
		t.warnf("discarding corrupt %s record: %v", store.KeyStudentProfile, err)
	case ok:
		t.state.Profile = prof.Snapshot
		pct := profile.ComputeCompletion(&t.state.Profile)
		tier := profile.CreditsForCompletion(pct)
		if pct != prof.ProfileCompletion || tier != prof.Credits {
			// Persisted derived values are stale; adopt the fresh
			// pair and shift the top-level credits by the tier delta.
			t.state.Credits += tier - prof.Credits
			t.warnf("recomputed stale profile completion (%d%% -> %d%%)",
				prof.ProfileCompletion, pct)
		}
		t.state.ProfileCompletion = pct
	}

	var content []string
	ok, err = t.records.Get(ctx, store.KeyCompletedContent, &content)
	switch {
	case err != nil:
		t.warnf("discarding corrupt %s record: %v", store.KeyCompletedContent, err)
	case ok:
		t.content = content
	}

	t.sanitize()
	return t.state
}

// sanitize restores numeric invariants after rehydration.
func (t *Tracker) sanitize() {
	if t.state.Level < 1 {
		t.state.Level = 1
	}
	if t.state.RequiredXP <= 0 {
		t.state.RequiredXP = t.state.Level * BaseXPPerLevel
	}
	if t.state.CurrentXP < 0 {
		t.state.CurrentXP = 0
	}
	if t.state.Credits < 0 {
		t.state.Credits = 0
	}
}

// UpdateProfile merges a partial profile edit, recomputes completion
// and tier credits, stamps lastUpdated, and persists. There are no
// error conditions: absent patch fields are left untouched and
// persistence failures only warn.
func (t *Tracker) UpdateProfile(ctx context.Context, patch profile.Patch) State {
	t.state.Profile.Apply(patch)
	t.recomputeProfile()
	t.state.LastUpdated = t.now()
	t.persist(ctx)
	return t.state
}

// recomputeProfile refreshes the derived completion percentage and
// shifts top-level credits by the tier delta, keeping direct credit
// awards intact.
func (t *Tracker) recomputeProfile() {
	oldTier := profile.CreditsForCompletion(t.state.ProfileCompletion)
	pct := profile.ComputeCompletion(&t.state.Profile)
	newTier := profile.CreditsForCompletion(pct)

	t.state.ProfileCompletion = pct
	t.state.Credits += newTier - oldTier
	if t.state.Credits < 0 {
		t.state.Credits = 0
	}
}

// AppendToListField appends a trimmed value to subjects or interests.
// An empty value is a no-op returning the current state; duplicates
// are allowed.
func (t *Tracker) AppendToListField(ctx context.Context, field profile.ListField, value string) State {
	value = strings.TrimSpace(value)
	if value == "" {
		return t.state
	}

	list := append(slices.Clone(t.state.Profile.List(field)), value)
	return t.UpdateProfile(ctx, listPatch(field, list))
}

// RemoveFromListField removes the element at index from subjects or
// interests. An out-of-range index is a no-op.
func (t *Tracker) RemoveFromListField(ctx context.Context, field profile.ListField, index int) State {
	cur := t.state.Profile.List(field)
	if index < 0 || index >= len(cur) {
		return t.state
	}

	list := slices.Delete(slices.Clone(cur), index, index+1)
	return t.UpdateProfile(ctx, listPatch(field, list))
}

func listPatch(field profile.ListField, list []string) profile.Patch {
	if field == profile.FieldInterests {
		return profile.Patch{Interests: &list}
	}
	return profile.Patch{Subjects: &list}
}

// AddXP awards experience points, applying the level reducer, streak
// bookkeeping, and the XP event log. Zero is a no-op; negative
// amounts are rejected with ErrNegativeAmount.
func (t *Tracker) AddXP(ctx context.Context, amount int, reason string) (State, error) {
	if amount < 0 {
		return t.state, ErrNegativeAmount
	}
	if amount == 0 {
		return t.state, nil
	}

	now := t.now()
	t.state.LevelState = ApplyXP(t.state.LevelState, amount)
	t.state.TotalXP += amount
	t.state.Streak = t.state.Streak.Mark(now)
	t.state.LastUpdated = now
	t.persist(ctx)

	if t.events != nil {
		err := t.events.Append(ctx, store.XPEventData{
			AwardID: uuid.NewString(),
			Amount:  amount,
			Reason:  reason,
		})
		if err != nil {
			t.warnf("failed to log XP award: %v", err)
		}
	}
	return t.state, nil
}

// AddCredits awards credits directly, independent of the
// profile-completion tier. Zero is a no-op; negative amounts are
// rejected with ErrNegativeAmount.
func (t *Tracker) AddCredits(ctx context.Context, amount int) (State, error) {
	if amount < 0 {
		return t.state, ErrNegativeAmount
	}
	if amount == 0 {
		return t.state, nil
	}

	t.state.Credits += amount
	t.state.LastUpdated = t.now()
	t.persist(ctx)
	return t.state, nil
}

// CompleteContent records a completed content id and awards xp for
// it. Completing the same id twice is a no-op, so content can never
// pay out double XP. Content ids are opaque; they are not validated
// against any catalog.
func (t *Tracker) CompleteContent(ctx context.Context, id string, xp int) (State, error) {
	id = strings.TrimSpace(id)
	if id == "" || slices.Contains(t.content, id) {
		return t.state, nil
	}

	t.content = append(t.content, id)
	if xp > 0 {
		return t.AddXP(ctx, xp, "completed "+id)
	}

	t.state.LastUpdated = t.now()
	t.persist(ctx)
	return t.state, nil
}

// RefreshBadges evaluates the catalog against the tracker's own stats
// and stores the unlocked count as the badge total.
func (t *Tracker) RefreshBadges(ctx context.Context, catalog []achievements.Achievement) State {
	n := len(achievements.Unlocked(t.Stats(), catalog))
	if n == t.state.Badges {
		return t.state
	}

	t.state.Badges = n
	t.state.LastUpdated = t.now()
	t.persist(ctx)
	return t.state
}

// Stats builds the statistics snapshot for achievement evaluation
// from the canonical state and the completed-content ledger.
func (t *Tracker) Stats() achievements.Stats {
	var lessons, labs, blogs int
	for _, id := range t.content {
		switch {
		case strings.HasPrefix(id, "lesson"):
			lessons++
		case strings.HasPrefix(id, "lab"):
			labs++
		case strings.HasPrefix(id, "blog"):
			blogs++
		}
	}

	return achievements.Stats{
		LessonsCompleted:  lessons,
		LabsCompleted:     labs,
		BlogsRead:         blogs,
		TotalXP:           t.state.TotalXP,
		CurrentStreak:     t.state.Current,
		ProfileCompletion: t.state.ProfileCompletion,
		Level:             t.state.Level,
		DaysActive:        t.state.DaysActive,
	}
}

// persist writes all three records. Failures are warned and swallowed:
// the in-memory state stays authoritative for the session and no
// mutation surfaces a persistence error to its caller.
func (t *Tracker) persist(ctx context.Context) {
	if err := t.records.Put(ctx, store.KeyStudentData, t.state); err != nil {
		t.warnf("failed to persist %s: %v", store.KeyStudentData, err)
	}

	rec := profileRecord{
		Snapshot:          t.state.Profile,
		ProfileCompletion: t.state.ProfileCompletion,
		Credits:           profile.CreditsForCompletion(t.state.ProfileCompletion),
		LastUpdated:       t.state.LastUpdated,
	}
	if err := t.records.Put(ctx, store.KeyStudentProfile, rec); err != nil {
		t.warnf("failed to persist %s: %v", store.KeyStudentProfile, err)
	}

	if err := t.records.Put(ctx, store.KeyCompletedContent, t.content); err != nil {
		t.warnf("failed to persist %s: %v", store.KeyCompletedContent, err)
	}
}

func (t *Tracker) warnf(format string, args ...any) {
	fmt.Fprintf(t.warnw, "warning: "+format+"\n", args...)
}
