package daily

// CycleDayStatus classifies one slot of the 7-day reward cycle window.
type CycleDayStatus string

const (
	CycleDone    CycleDayStatus = "done"    // completed day
	CycleMissed  CycleDayStatus = "missed"  // past day without completion
	CycleCurrent CycleDayStatus = "current" // today, not yet completed
	CycleLocked  CycleDayStatus = "locked"  // future day
)

// CycleDay is one day of the window with its display classification.
type CycleDay struct {
	Date   Day            `json:"date"`
	Status CycleDayStatus `json:"status"`
}

// CycleWindowView is the read-only projection of the 7-day window today falls
// into, anchored to the user's cycle start date.
type CycleWindowView struct {
	WeekIndex int        `json:"week_index"`
	Start     Day        `json:"start"`
	Days      []CycleDay `json:"days"`
}

// CycleWindow computes the window containing today. cycleStart is fixed at
// record creation and never resets, so the week index simply keeps growing
// across long absences.
func CycleWindow(cycleStart, today Day, history History) CycleWindowView {
	week := DaysBetween(cycleStart, today) / 7
	if week < 0 {
		week = 0
	}
	start := cycleStart.AddDays(week * 7)

	days := make([]CycleDay, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		var status CycleDayStatus
		switch {
		case history.Contains(d):
			status = CycleDone
		case d == today:
			status = CycleCurrent
		case DaysBetween(today, d) > 0:
			status = CycleLocked
		default:
			status = CycleMissed
		}
		days[i] = CycleDay{Date: d, Status: status}
	}

	return CycleWindowView{WeekIndex: week, Start: start, Days: days}
}
