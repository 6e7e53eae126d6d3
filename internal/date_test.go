package internal_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bpi-report/internal"
)

func TestNewRequestWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "same month",
			now:       time.Date(2022, 8, 4, 13, 57, 0, 0, time.UTC),
			wantStart: "2022-07-05",
			wantEnd:   "2022-08-04",
		},
		{
			name:      "year rollover",
			now:       time.Date(2023, 1, 5, 9, 0, 0, 0, time.UTC),
			wantStart: "2022-12-06",
			wantEnd:   "2023-01-05",
		},
		{
			name:      "leap february",
			now:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantStart: "2024-01-31",
			wantEnd:   "2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := internal.NewRequestWindow(tt.now, 30)
			assert.Equal(t, tt.wantStart, w.Start.String())
			assert.Equal(t, tt.wantEnd, w.End.String())
			assert.Equal(t, 30, w.Days())
		})
	}
}

func TestNewRequestWindow_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2023-01-01 05:00 in UTC+10 is still 2022-12-31 in UTC.
	now := time.Date(2023, 1, 1, 5, 0, 0, 0, loc)

	w := internal.NewRequestWindow(now, 30)

	assert.Equal(t, "2023-01-01", w.End.String())
	assert.Equal(t, "2022-12-02", w.Start.String())
}

func TestNewRequestWindow_DefaultDays(t *testing.T) {
	w := internal.NewRequestWindow(time.Date(2022, 8, 4, 0, 0, 0, 0, time.UTC), 0)
	assert.Equal(t, internal.DefaultWindowDays, w.Days())
}

func TestDate_UnmarshalText(t *testing.T) {
	var d internal.Date
	require.NoError(t, d.UnmarshalText([]byte(" 2022-07-05 ")))
	assert.Equal(t, "2022-07-05", d.String())
	assert.Equal(t, time.UTC, d.Location())

	require.Error(t, d.UnmarshalText([]byte("05/07/2022")))
	require.Error(t, d.UnmarshalText(nil))
	assert.Equal(t, "2022-07-05", d.String(), "a failed decode leaves the value alone")
}

func TestDate_AsJSONMapKey(t *testing.T) {
	var byDate map[internal.Date]int
	require.NoError(t, json.Unmarshal([]byte(`{"2022-07-06":2,"2022-07-05":1}`), &byDate))

	assert.Equal(t, 1, byDate[day(2022, time.July, 5)])
	assert.Equal(t, 2, byDate[day(2022, time.July, 6)])

	require.Error(t, json.Unmarshal([]byte(`{"July 5":1}`), &byDate))
}
