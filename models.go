package finmarket

import (
	"time"

	"github.com/guregu/null/v6"
)

// ========================= RESPONSES =========================

// SearchResult is one instrument record from the search endpoint.
type SearchResult struct {
	// Identifier used for chart lookups.
	IDNotation int    `json:"id_notation"`
	Name       string `json:"name"`
	// Optional attributes. Invalid when the upstream record omitted the key,
	// valid (possibly empty) when the key was present.
	Symbol null.String `json:"symbol"`
	Market null.String `json:"market"`
	Type   null.String `json:"type"`
	// Raw is the record exactly as received, for upstream fields not
	// modeled above.
	Raw map[string]any `json:"raw_data"`
}

// ChartPoint is one OHLCV observation.
type ChartPoint struct {
	Date time.Time `json:"date"`
	Open float64   `json:"open"`
	High float64   `json:"high"`
	Low  float64   `json:"low"`
	// Close is the only field the upstream always sends.
	Close float64 `json:"close"`
	// Volume is zero when the request did not ask for volume data.
	Volume int64 `json:"volume"`
	// PctRel is the change relative to the previous point, in percent.
	PctRel float64 `json:"pctrel"`
	// Decimals is the upstream display-precision hint, not used in any
	// computation here.
	Decimals int `json:"decimals"`
}

// ChartData is one fetched series. Points keep the exact upstream order,
// oldest first.
type ChartData struct {
	IDNotation int          `json:"id_notation"`
	TimeSpan   TimeSpan     `json:"time_span"`
	Points     []ChartPoint `json:"points"`
}
