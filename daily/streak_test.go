package daily

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name    string
		history History
		today   Day
		want    int
	}{
		{
			name:    "empty history",
			history: History{},
			today:   "2024-01-10",
			want:    0,
		},
		{
			name:    "three days ending yesterday",
			history: History{"2024-01-08", "2024-01-09", "2024-01-10"},
			today:   "2024-01-11",
			want:    3,
		},
		{
			name:    "gap stops the walk",
			history: History{"2024-01-08", "2024-01-10"},
			today:   "2024-01-10",
			want:    1,
		},
		{
			name:    "today included extends the run",
			history: History{"2024-01-09", "2024-01-10"},
			today:   "2024-01-10",
			want:    2,
		},
		{
			name:    "two day gap resets entirely",
			history: History{"2024-01-01", "2024-01-02"},
			today:   "2024-01-06",
			want:    0,
		},
		{
			name:    "insertion order does not matter",
			history: History{"2024-01-10", "2024-01-08", "2024-01-09"},
			today:   "2024-01-10",
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.history, tt.today))
		})
	}
}

func TestComputeStreak_MonthBoundary(t *testing.T) {
	h := History{"2024-01-30", "2024-01-31", "2024-02-01"}
	assert.Equal(t, 3, ComputeStreak(h, "2024-02-01"))
}

func TestComputeStreak_LongRunTerminates(t *testing.T) {
	h := History{}
	day := Day("2024-01-01")
	for i := 0; i < 365; i++ {
		h.Add(day.AddDays(i))
	}
	assert.Equal(t, 365, ComputeStreak(h, "2024-12-30"))
}
