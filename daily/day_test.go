package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Day("2024-02-29"), d)

	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-2-9", "yesterday"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Day("2024-05-01"), DayOf(ts))
}

func TestAddDays_CrossesBoundaries(t *testing.T) {
	assert.Equal(t, Day("2024-03-01"), Day("2024-02-29").AddDays(1))
	assert.Equal(t, Day("2023-12-31"), Day("2024-01-01").AddDays(-1))
	assert.Equal(t, Day("2024-01-08"), Day("2024-01-01").AddDays(7))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 8, DaysBetween("2024-01-01", "2024-01-09"))
	assert.Equal(t, -3, DaysBetween("2024-01-04", "2024-01-01"))
	assert.Equal(t, 0, DaysBetween("2024-01-01", "2024-01-01"))
}
