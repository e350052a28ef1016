package daily

import (
	"context"

	"go.uber.org/zap"
)

// Store is the persistence collaborator: a durable remote copy and a
// fast local cache of the same record. Absence is reported as a nil record,
// never as an error.
type Store interface {
	LoadRemote(ctx context.Context, userID uint) (*Record, error)
	SaveRemote(ctx context.Context, userID uint, rec Record) error
	LoadLocal(ctx context.Context, userID uint) (*Record, error)
	SaveLocal(ctx context.Context, userID uint, rec Record) error
}

// BonusPolicy carries the point values owned by the scoring layer. Large is
// paid when a completion lands the streak on a multiple of seven.
type BonusPolicy struct {
	Small int
	Large int
}

// Bonus is the outcome of a completion event for the caller to forward to
// score recording.
type Bonus struct {
	Awarded bool `json:"awarded"`
	Weekly  bool `json:"weekly"`
	Points  int  `json:"points"`
}

// Engine owns the daily rotation, the step state machine and the streak/cycle
// projections. It performs no I/O of its own beyond the injected Store; remote
// persistence failures are logged and never block progress.
type Engine struct {
	store Store
	bonus BonusPolicy
	log   *zap.SugaredLogger
}

// NewEngine builds an engine around a store and bonus policy. A nil logger
// disables engine logging.
func NewEngine(store Store, bonus BonusPolicy, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{store: store, bonus: bonus, log: log}
}

// Resolve reconciles the two copies of a user's progress into the record for
// today. The remote copy wins when its date matches today, then the local
// copy; otherwise a fresh rotation is generated. History and cycle anchor are
// taken from whichever copy carries history, remote preferred.
func Resolve(userID uint, today Day, remote, local *Record) Record {
	rec := Record{UserID: userID, Date: today}

	switch {
	case remote != nil && remote.Date == today:
		rec.Games = append(rec.Games[:0], remote.Games...)
		rec.CurrentStep = remote.CurrentStep
	case local != nil && local.Date == today:
		rec.Games = append(rec.Games[:0], local.Games...)
		rec.CurrentStep = local.CurrentStep
	default:
		rec.Games = GenerateDailyGames(today)
		rec.CurrentStep = StepNotStarted
	}

	switch {
	case remote != nil && len(remote.History) > 0:
		rec.History = remote.History.Clone()
		rec.CycleStartDate = remote.CycleStartDate
	case local != nil && len(local.History) > 0:
		rec.History = local.History.Clone()
		rec.CycleStartDate = local.CycleStartDate
	default:
		rec.History = History{}
		rec.CycleStartDate = today
		if remote != nil && remote.CycleStartDate != "" {
			rec.CycleStartDate = remote.CycleStartDate
		} else if local != nil && local.CycleStartDate != "" {
			rec.CycleStartDate = local.CycleStartDate
		}
	}

	rec.Streak = ComputeStreak(rec.History, today)
	return rec
}

// ResolveToday loads both copies, reconciles them and persists the result so
// a record for today exists afterwards. A remote load or save failure
// degrades to the surviving copy instead of erroring.
func (e *Engine) ResolveToday(ctx context.Context, userID uint, today Day) Record {
	remote, err := e.store.LoadRemote(ctx, userID)
	if err != nil {
		e.log.Warnf("daily: remote load failed for user %d: %v", userID, err)
		remote = nil
	}
	local, err := e.store.LoadLocal(ctx, userID)
	if err != nil {
		e.log.Warnf("daily: local load failed for user %d: %v", userID, err)
		local = nil
	}

	rec := Resolve(userID, today, remote, local)
	e.persist(ctx, userID, rec)
	return rec
}

// SyncClient reconciles a record pushed by the client (its localStorage copy)
// against the stored remote copy and persists the outcome. The stored remote
// still wins for today; the pushed copy only fills gaps.
func (e *Engine) SyncClient(ctx context.Context, userID uint, today Day, client Record) Record {
	remote, err := e.store.LoadRemote(ctx, userID)
	if err != nil {
		e.log.Warnf("daily: remote load failed for user %d: %v", userID, err)
		remote = nil
	}

	rec := Resolve(userID, today, remote, &client)
	e.persist(ctx, userID, rec)
	return rec
}

// AdvanceStep applies one step transition. A playedStep that does not match
// the record's current step, a finished day, or a stale record date makes the
// call a no-op, which keeps retried requests from double-advancing. Reaching
// the final step records the completion once and settles the bonus.
func (e *Engine) AdvanceStep(ctx context.Context, rec Record, playedStep int, today Day) (Record, Bonus) {
	if rec.Date != today || playedStep != rec.CurrentStep || rec.CurrentStep >= StepDone {
		return rec, Bonus{}
	}

	out := rec.Clone()
	out.CurrentStep++

	var bonus Bonus
	if out.CurrentStep == StepDone {
		if out.History.Add(today) {
			out.Streak = ComputeStreak(out.History, today)
			bonus = Bonus{Awarded: true, Points: e.bonus.Small}
			if out.Streak%7 == 0 {
				bonus.Weekly = true
				bonus.Points = e.bonus.Large
			}
		}
	}

	e.persist(ctx, out.UserID, out)
	return out, bonus
}

// persist writes both copies; the local cache is assumed reliable, remote
// failures are logged and tolerated until the next sync.
func (e *Engine) persist(ctx context.Context, userID uint, rec Record) {
	if err := e.store.SaveLocal(ctx, userID, rec); err != nil {
		e.log.Warnf("daily: local save failed for user %d: %v", userID, err)
	}
	if err := e.store.SaveRemote(ctx, userID, rec); err != nil {
		e.log.Warnf("daily: remote save failed for user %d: %v", userID, err)
	}
}
