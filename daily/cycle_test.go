package daily

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleWindow_SecondWeek(t *testing.T) {
	history := History{"2024-01-08"}
	w := CycleWindow("2024-01-01", "2024-01-09", history)

	assert.Equal(t, 1, w.WeekIndex)
	assert.Equal(t, Day("2024-01-08"), w.Start)
	require.Len(t, w.Days, 7)

	assert.Equal(t, CycleDone, w.Days[0].Status)
	assert.Equal(t, CycleCurrent, w.Days[1].Status)
	for i := 2; i < 7; i++ {
		assert.Equal(t, CycleLocked, w.Days[i].Status, "offset %d", i)
	}
}

func TestCycleWindow_MissedAndDone(t *testing.T) {
	history := History{"2024-01-01", "2024-01-03"}
	w := CycleWindow("2024-01-01", "2024-01-04", history)

	assert.Equal(t, 0, w.WeekIndex)
	assert.Equal(t, Day("2024-01-01"), w.Start)
	assert.Equal(t, CycleDone, w.Days[0].Status)
	assert.Equal(t, CycleMissed, w.Days[1].Status)
	assert.Equal(t, CycleDone, w.Days[2].Status)
	assert.Equal(t, CycleCurrent, w.Days[3].Status)
	assert.Equal(t, CycleLocked, w.Days[4].Status)
}

func TestCycleWindow_TodayCompleted(t *testing.T) {
	history := History{"2024-01-01"}
	w := CycleWindow("2024-01-01", "2024-01-01", history)
	assert.Equal(t, CycleDone, w.Days[0].Status)
}

func TestCycleWindow_ClampsNegativeWeek(t *testing.T) {
	// Anchor in the future should not produce a negative window.
	w := CycleWindow("2024-01-10", "2024-01-05", History{})
	assert.Equal(t, 0, w.WeekIndex)
	assert.Equal(t, Day("2024-01-10"), w.Start)
}

func TestCycleWindow_LongAbsenceKeepsAnchor(t *testing.T) {
	// The anchor never resets; a month later the index has simply grown.
	w := CycleWindow("2024-01-01", "2024-02-15", History{})
	assert.Equal(t, 6, w.WeekIndex)
	assert.Equal(t, Day("2024-02-12"), w.Start)
}
