package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silvergames/braingym/daily"
	"github.com/silvergames/braingym/models"
)

func TestRowCodec_RoundTrip(t *testing.T) {
	rec := daily.Record{
		UserID:         9,
		Date:           "2024-05-01",
		Games:          daily.GenerateDailyGames("2024-05-01"),
		CurrentStep:    3,
		History:        daily.History{"2024-04-29", "2024-04-30"},
		CycleStartDate: "2024-04-24",
		Streak:         2,
	}

	row, err := toRow(9, rec)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", row.Date)
	assert.Equal(t, 3, row.CurrentStep)

	back, err := fromRow(row)
	require.NoError(t, err)
	assert.Equal(t, rec, *back)
}

func TestFromRow_EmptyColumns(t *testing.T) {
	// Rows written before a schema backfill may carry empty JSON columns.
	rec, err := fromRow(models.DailyProgress{UserID: 1, Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, daily.Day("2024-05-01"), rec.Date)
	assert.Empty(t, rec.Games)
	assert.Empty(t, rec.History)
}
