package daily

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps both copies in memory and can simulate remote outages.
type fakeStore struct {
	remote     map[uint]*Record
	local      map[uint]*Record
	remoteDown bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{remote: map[uint]*Record{}, local: map[uint]*Record{}}
}

func (f *fakeStore) LoadRemote(_ context.Context, userID uint) (*Record, error) {
	if f.remoteDown {
		return nil, errors.New("remote unavailable")
	}
	if rec, ok := f.remote[userID]; ok {
		out := rec.Clone()
		return &out, nil
	}
	return nil, nil
}

func (f *fakeStore) SaveRemote(_ context.Context, userID uint, rec Record) error {
	if f.remoteDown {
		return errors.New("remote unavailable")
	}
	out := rec.Clone()
	f.remote[userID] = &out
	return nil
}

func (f *fakeStore) LoadLocal(_ context.Context, userID uint) (*Record, error) {
	if rec, ok := f.local[userID]; ok {
		out := rec.Clone()
		return &out, nil
	}
	return nil, nil
}

func (f *fakeStore) SaveLocal(_ context.Context, userID uint, rec Record) error {
	out := rec.Clone()
	f.local[userID] = &out
	return nil
}

func newTestEngine(store Store) *Engine {
	return NewEngine(store, BonusPolicy{Small: 10, Large: 100}, nil)
}

func TestResolve_FreshDayGeneratesRotation(t *testing.T) {
	rec := Resolve(1, "2024-05-01", nil, nil)

	assert.Equal(t, Day("2024-05-01"), rec.Date)
	assert.Equal(t, StepNotStarted, rec.CurrentStep)
	assert.Equal(t, GenerateDailyGames("2024-05-01"), rec.Games)
	assert.Equal(t, Day("2024-05-01"), rec.CycleStartDate)
	assert.Empty(t, rec.History)
	assert.Equal(t, 0, rec.Streak)
}

func TestResolve_RemoteWinsOnDateMatch(t *testing.T) {
	remote := &Record{
		UserID:         1,
		Date:           "2024-05-01",
		Games:          GenerateDailyGames("2024-05-01"),
		CurrentStep:    2,
		History:        History{"2024-04-30"},
		CycleStartDate: "2024-04-20",
	}
	local := &Record{
		UserID:         1,
		Date:           "2024-05-01",
		Games:          GenerateDailyGames("2024-05-01"),
		CurrentStep:    1,
		History:        History{"2024-04-30"},
		CycleStartDate: "2024-04-20",
	}

	rec := Resolve(1, "2024-05-01", remote, local)
	assert.Equal(t, 2, rec.CurrentStep)
	assert.Equal(t, Day("2024-04-20"), rec.CycleStartDate)
	assert.Equal(t, 1, rec.Streak)
}

func TestResolve_LocalFallbackWhenRemoteStale(t *testing.T) {
	remote := &Record{
		UserID:      1,
		Date:        "2024-04-30",
		Games:       GenerateDailyGames("2024-04-30"),
		CurrentStep: 4,
	}
	local := &Record{
		UserID:      1,
		Date:        "2024-05-01",
		Games:       GenerateDailyGames("2024-05-01"),
		CurrentStep: 3,
	}

	rec := Resolve(1, "2024-05-01", remote, local)
	assert.Equal(t, 3, rec.CurrentStep)
	assert.Equal(t, local.Games, rec.Games)
}

func TestResolve_StaleRecordsStartNewDayButKeepLineage(t *testing.T) {
	remote := &Record{
		UserID:         1,
		Date:           "2024-04-30",
		Games:          GenerateDailyGames("2024-04-30"),
		CurrentStep:    4,
		History:        History{"2024-04-29", "2024-04-30"},
		CycleStartDate: "2024-04-24",
	}

	rec := Resolve(1, "2024-05-01", remote, nil)
	assert.Equal(t, StepNotStarted, rec.CurrentStep)
	assert.Equal(t, GenerateDailyGames("2024-05-01"), rec.Games)
	assert.Equal(t, History{"2024-04-29", "2024-04-30"}, rec.History)
	assert.Equal(t, Day("2024-04-24"), rec.CycleStartDate)
	assert.Equal(t, 2, rec.Streak, "yesterday's completion keeps the streak alive")
}

func TestResolve_RemoteHistoryPreferred(t *testing.T) {
	remote := &Record{Date: "2024-04-30", History: History{"2024-04-30"}, CycleStartDate: "2024-04-28"}
	local := &Record{Date: "2024-04-30", History: History{"2024-04-29", "2024-04-30"}, CycleStartDate: "2024-04-01"}

	rec := Resolve(1, "2024-05-01", remote, local)
	assert.Equal(t, History{"2024-04-30"}, rec.History)
	assert.Equal(t, Day("2024-04-28"), rec.CycleStartDate)
}

func TestResolveToday_PersistsBothCopies(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)

	rec := e.ResolveToday(context.Background(), 7, "2024-05-01")

	require.NotNil(t, store.remote[7])
	require.NotNil(t, store.local[7])
	assert.Equal(t, rec, *store.remote[7])
	assert.Equal(t, rec, *store.local[7])
}

func TestResolveToday_RoundTripIsStable(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)

	first := e.ResolveToday(context.Background(), 7, "2024-05-01")
	second := e.ResolveToday(context.Background(), 7, "2024-05-01")
	assert.Equal(t, first, second, "resolving again over persisted state must not drift")
}

func TestResolveToday_SurvivesRemoteOutage(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)

	// Seed local state, then take the remote away.
	rec := e.ResolveToday(context.Background(), 7, "2024-05-01")
	store.remoteDown = true

	again := e.ResolveToday(context.Background(), 7, "2024-05-01")
	assert.Equal(t, rec.Games, again.Games, "local cache carries the day during an outage")
}

func TestAdvanceStep_HappyPathToCompletion(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)
	ctx := context.Background()
	today := Day("2024-05-01")

	rec := e.ResolveToday(ctx, 1, today)
	var bonus Bonus
	for step := 0; step < 4; step++ {
		rec, bonus = e.AdvanceStep(ctx, rec, step, today)
		assert.Equal(t, step+1, rec.CurrentStep)
	}

	assert.True(t, rec.History.Contains(today))
	assert.Equal(t, 1, rec.Streak)
	assert.True(t, bonus.Awarded)
	assert.False(t, bonus.Weekly)
	assert.Equal(t, 10, bonus.Points)
	assert.Equal(t, rec, *store.remote[1], "completion must be persisted")
}

func TestAdvanceStep_StaleStepIsNoop(t *testing.T) {
	e := newTestEngine(newFakeStore())
	ctx := context.Background()
	today := Day("2024-05-01")

	rec := e.ResolveToday(ctx, 1, today)
	rec, _ = e.AdvanceStep(ctx, rec, 0, today)
	require.Equal(t, 1, rec.CurrentStep)

	// Retried delivery of the already-applied step changes nothing.
	again, bonus := e.AdvanceStep(ctx, rec, 0, today)
	assert.Equal(t, rec, again)
	assert.False(t, bonus.Awarded)

	// A step from the future is equally ignored.
	again, _ = e.AdvanceStep(ctx, rec, 2, today)
	assert.Equal(t, rec, again)
}

func TestAdvanceStep_WrongDateIsNoop(t *testing.T) {
	e := newTestEngine(newFakeStore())
	ctx := context.Background()

	rec := e.ResolveToday(ctx, 1, "2024-05-01")
	out, bonus := e.AdvanceStep(ctx, rec, 0, "2024-05-02")
	assert.Equal(t, rec, out)
	assert.False(t, bonus.Awarded)
}

func TestAdvanceStep_WeeklyBonusOnSeventhDay(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)
	ctx := context.Background()

	start := Day("2024-05-01")
	var lastBonus Bonus
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		rec := e.ResolveToday(ctx, 1, day)
		for step := 0; step < 4; step++ {
			rec, lastBonus = e.AdvanceStep(ctx, rec, step, day)
		}
		if i < 6 {
			assert.False(t, lastBonus.Weekly, "day %d should get the small bonus", i+1)
			assert.Equal(t, 10, lastBonus.Points)
		}
	}

	assert.True(t, lastBonus.Awarded)
	assert.True(t, lastBonus.Weekly)
	assert.Equal(t, 100, lastBonus.Points)
}

func TestAdvanceStep_RecompletedDayYieldsNoBonus(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)
	ctx := context.Background()
	today := Day("2024-05-01")

	rec := e.ResolveToday(ctx, 1, today)
	for step := 0; step < 4; step++ {
		rec, _ = e.AdvanceStep(ctx, rec, step, today)
	}
	require.True(t, rec.History.Contains(today))

	// Simulate a second device replaying the day from step 3.
	replay := rec.Clone()
	replay.CurrentStep = 3
	out, bonus := e.AdvanceStep(ctx, replay, 3, today)
	assert.False(t, bonus.Awarded)
	assert.Equal(t, History{today}, out.History, "history must not gain a duplicate")
}

func TestAdvanceStep_HistoryNeverShrinks(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store)
	ctx := context.Background()

	rec := e.ResolveToday(ctx, 1, "2024-05-01")
	rec.History = History{"2024-04-28", "2024-04-30"}

	for step := 0; step < 4; step++ {
		rec, _ = e.AdvanceStep(ctx, rec, step, "2024-05-01")
	}
	assert.ElementsMatch(t, History{"2024-04-28", "2024-04-30", "2024-05-01"}, rec.History)
}
