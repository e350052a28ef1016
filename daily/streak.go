package daily

// streakScanSlack bounds the backward walk beyond the history size so the
// scan terminates even on malformed history data.
const streakScanSlack = 30

// ComputeStreak counts consecutive completed days walking backward from
// today. When today itself is not yet completed the walk starts at yesterday,
// so an in-progress day does not break an ongoing streak.
func ComputeStreak(history History, today Day) int {
	if len(history) == 0 {
		return 0
	}

	cursor := today
	if !history.Contains(cursor) {
		cursor = cursor.AddDays(-1)
	}

	streak := 0
	limit := len(history) + streakScanSlack
	for i := 0; i < limit; i++ {
		if !history.Contains(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDays(-1)
	}
	return streak
}
