package finmarket

import "k8s.io/apimachinery/pkg/util/sets"

// TimeSpan selects how much history a chart request covers.
type TimeSpan string

const (
	Span1D  TimeSpan = "1D"
	Span5D  TimeSpan = "5D"
	Span1M  TimeSpan = "1M"
	Span3M  TimeSpan = "3M"
	Span6M  TimeSpan = "6M"
	Span1Y  TimeSpan = "1Y"
	Span3Y  TimeSpan = "3Y"
	Span5Y  TimeSpan = "5Y"
	Span10Y TimeSpan = "10Y"
	// SpanMax requests every point the upstream has, via an explicit
	// 1900-01-01..today date window instead of a TIME_SPAN code.
	SpanMax TimeSpan = "MAX"
)

var timeSpanSet = sets.New(
	Span1D, Span5D, Span1M, Span3M, Span6M,
	Span1Y, Span3Y, Span5Y, Span10Y, SpanMax,
)

// Recognized reports whether s is one of the documented span codes. The
// client forwards unrecognized codes to the upstream untouched; this is a
// convenience for callers that want to check first.
func (s TimeSpan) Recognized() bool {
	return timeSpanSet.Has(s)
}
