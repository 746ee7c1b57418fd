package finframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finmarket "github.com/rfuenzalida/finmarket-go"
)

func chartPoints() []finmarket.ChartPoint {
	return []finmarket.ChartPoint{
		{
			Date:     time.Date(2025, time.January, 21, 0, 0, 0, 0, time.UTC),
			Open:     99.0,
			High:     101.0,
			Low:      98.5,
			Close:    100.0,
			Volume:   1000,
			PctRel:   0,
			Decimals: 2,
		},
		{
			Date:     time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
			Open:     100.0,
			High:     104.5,
			Low:      99.8,
			Close:    104.17,
			Volume:   2000,
			PctRel:   4.17,
			Decimals: 2,
		},
	}
}

func TestNew(t *testing.T) {
	f := New(chartPoints())

	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, []string{"date", "open", "high", "low", "close", "volume", "pctrel", "decimals"}, f.Columns())

	df := f.DataFrame()
	require.NoError(t, df.Err)
	assert.Equal(t, []float64{100.0, 104.17}, df.Col("close").Float())
	assert.Equal(t, []float64{0, 4.17}, df.Col("pctrel").Float())

	dates := df.Col("date").Records()
	assert.Equal(t, "2025-01-21T00:00:00Z", dates[0])
	assert.Equal(t, "2025-01-22T00:00:00Z", dates[1])
}

func TestNewEmpty(t *testing.T) {
	f := New(nil)

	assert.Equal(t, 0, f.NumRows())
	assert.Equal(t, []string{"date", "open", "high", "low", "close", "volume", "pctrel", "decimals"}, f.Columns())
}

func TestRegisteredBuilder(t *testing.T) {
	chart := &finmarket.ChartData{
		IDNotation: 3969,
		TimeSpan:   finmarket.Span1Y,
		Points:     chartPoints(),
	}

	f, err := chart.Frame()
	require.NoError(t, err)
	assert.Equal(t, len(chart.Points), f.NumRows())
	assert.Equal(t, []string{"date", "open", "high", "low", "close", "volume", "pctrel", "decimals"}, f.Columns())
}

func TestString(t *testing.T) {
	f := New(chartPoints())
	assert.Contains(t, f.String(), "close")
}
