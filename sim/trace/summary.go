package trace

// TraceSummary aggregates statistics from an ExecutionTrace.
type TraceSummary struct {
	TotalSlices     int
	TotalMoves      int
	ExecutedTicks   int64
	TicksPerLevel   map[int]int64      // level → executed ticks
	SlicesPerPID    map[string]int     // pid → slice count
	MovesByReason   map[MoveReason]int // reason → move count
	LongestSlice    int64
	LongestSlicePID string
}

// Summarize computes aggregate statistics from an ExecutionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(tr *ExecutionTrace) *TraceSummary {
	summary := &TraceSummary{
		TicksPerLevel: make(map[int]int64),
		SlicesPerPID:  make(map[string]int),
		MovesByReason: make(map[MoveReason]int),
	}
	if tr == nil {
		return summary
	}

	summary.TotalSlices = len(tr.Slices)
	summary.TotalMoves = len(tr.Moves)

	for _, s := range tr.Slices {
		d := s.End - s.Start
		summary.ExecutedTicks += d
		summary.TicksPerLevel[s.Level] += d
		summary.SlicesPerPID[s.PID]++
		if d > summary.LongestSlice {
			summary.LongestSlice = d
			summary.LongestSlicePID = s.PID
		}
	}
	for _, m := range tr.Moves {
		summary.MovesByReason[m.Reason]++
	}
	return summary
}
