package finmarket

import "sync"

// Frame is the tabular view of a chart. The concrete implementation lives in
// the finframe subpackage so the dataframe dependency stays out of programs
// that never tabulate.
type Frame interface {
	NumRows() int
	Columns() []string
}

// FrameBuilder turns chart points into a Frame.
type FrameBuilder func(points []ChartPoint) (Frame, error)

// Could have used a plain var, but the builder gets swapped in tests.
type frameBuilderManager struct {
	builder FrameBuilder
	mu      sync.RWMutex
}

var frameBuilder frameBuilderManager

// RegisterFrameBuilder installs the builder [ChartData.Frame] uses. The
// finframe package calls this from init; importing it is enough:
//
//	import _ "github.com/rfuenzalida/finmarket-go/finframe"
func RegisterFrameBuilder(b FrameBuilder) {
	frameBuilder.mu.Lock()
	defer frameBuilder.mu.Unlock()
	frameBuilder.builder = b
}

func getFrameBuilder() FrameBuilder {
	frameBuilder.mu.RLock()
	defer frameBuilder.mu.RUnlock()
	return frameBuilder.builder
}

// Frame materializes the points as a table with the columns date, open,
// high, low, close, volume, pctrel, decimals, one row per point, in order.
// Without a registered builder it returns [ErrFrameUnavailable].
func (d *ChartData) Frame() (Frame, error) {
	b := getFrameBuilder()
	if b == nil {
		return nil, ErrFrameUnavailable
	}
	return b(d.Points)
}
