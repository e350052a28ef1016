package daily

// GameID identifies one of the five mini-games.
type GameID string

const (
	GameColorMatch  GameID = "color_match"
	GameArithmetic  GameID = "arithmetic"
	GameImageMemory GameID = "image_memory"
	GameAnimalSound GameID = "animal_sound"
	GameVocabulary  GameID = "vocabulary"
)

// Catalog is the fixed game catalog in canonical order. The rotation shuffle
// depends on this order, so it must not be reordered.
var Catalog = []GameID{
	GameColorMatch,
	GameArithmetic,
	GameImageMemory,
	GameAnimalSound,
	GameVocabulary,
}

// RotationSize is the number of games assigned per day.
const RotationSize = 3

// Step bounds for Record.CurrentStep.
const (
	StepNotStarted = 0
	StepDone       = 4
)

// GameAssignment is one slot in a day's rotation.
type GameAssignment struct {
	GameID GameID `json:"game_id"`
	Level  int    `json:"level"`
}

// History is the append-only set of days on which the user completed the full
// rotation. Insertion order is irrelevant; duplicates are never stored.
type History []Day

// Contains reports whether d is present.
func (h History) Contains(d Day) bool {
	for _, v := range h {
		if v == d {
			return true
		}
	}
	return false
}

// Add appends d if absent and reports whether it was added.
func (h *History) Add(d Day) bool {
	if h.Contains(d) {
		return false
	}
	*h = append(*h, d)
	return true
}

// Clone returns an independent copy so reconciliation never aliases a caller's
// slice.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}

// Record is one user's daily progress: the day's rotation, the step position
// within it, and the completion lineage carried across days.
type Record struct {
	UserID         uint             `json:"user_id"`
	Date           Day              `json:"date"`
	Games          []GameAssignment `json:"games"`
	CurrentStep    int              `json:"current_step"`
	History        History          `json:"history"`
	CycleStartDate Day              `json:"cycle_start_date"`
	Streak         int              `json:"streak"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	out.Games = make([]GameAssignment, len(r.Games))
	copy(out.Games, r.Games)
	out.History = r.History.Clone()
	return out
}
