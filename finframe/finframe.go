// Package finframe materializes chart points as gota data frames. Importing
// it registers the frame builder behind finmarket.ChartData.Frame; a blank
// import is enough:
//
//	import _ "github.com/rfuenzalida/finmarket-go/finframe"
package finframe

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	finmarket "github.com/rfuenzalida/finmarket-go"
)

func init() {
	finmarket.RegisterFrameBuilder(func(points []finmarket.ChartPoint) (finmarket.Frame, error) {
		f := New(points)
		if f.df.Err != nil {
			return nil, f.df.Err
		}
		return f, nil
	})
}

var columns = []string{"date", "open", "high", "low", "close", "volume", "pctrel", "decimals"}

// Frame wraps a gota DataFrame with the fixed chart column layout.
type Frame struct {
	df dataframe.DataFrame
}

// New builds a Frame from chart points, one row per point, preserving order.
// Dates are rendered as RFC 3339 strings.
func New(points []finmarket.ChartPoint) Frame {
	n := len(points)
	dates := make([]string, n)
	opens := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]int, n)
	pctrels := make([]float64, n)
	decimals := make([]int, n)
	for i, p := range points {
		dates[i] = p.Date.Format(time.RFC3339)
		opens[i] = p.Open
		highs[i] = p.High
		lows[i] = p.Low
		closes[i] = p.Close
		volumes[i] = int(p.Volume)
		pctrels[i] = p.PctRel
		decimals[i] = p.Decimals
	}
	df := dataframe.New(
		series.New(dates, series.String, columns[0]),
		series.New(opens, series.Float, columns[1]),
		series.New(highs, series.Float, columns[2]),
		series.New(lows, series.Float, columns[3]),
		series.New(closes, series.Float, columns[4]),
		series.New(volumes, series.Int, columns[5]),
		series.New(pctrels, series.Float, columns[6]),
		series.New(decimals, series.Int, columns[7]),
	)
	return Frame{df: df}
}

// NumRows returns the number of rows, one per chart point.
func (f Frame) NumRows() int { return f.df.Nrow() }

// Columns returns the column names in layout order.
func (f Frame) Columns() []string { return f.df.Names() }

// DataFrame exposes the underlying gota frame for further processing
// (filtering, aggregation, CSV export).
func (f Frame) DataFrame() dataframe.DataFrame { return f.df }

func (f Frame) String() string { return f.df.String() }
