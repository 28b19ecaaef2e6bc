package notification

import (
	"fmt"
	"strings"
)

// ChunkRange is a half-open [Start, End) range of directory indices whose
// bulk-enqueue call failed during a broadcast.
type ChunkRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PartialFanoutError reports a broadcast where some chunks could not be
// enqueued. Chunks that succeeded before the failure stay enqueued; the
// failed ranges are listed for the operator to re-drive.
type PartialFanoutError struct {
	Total  int
	Failed []ChunkRange
}

func (e *PartialFanoutError) Error() string {
	ranges := make([]string, 0, len(e.Failed))
	for _, r := range e.Failed {
		ranges = append(ranges, fmt.Sprintf("[%d:%d)", r.Start, r.End))
	}

	return fmt.Sprintf("broadcast to %d users partially failed, chunks %s not enqueued", e.Total, strings.Join(ranges, ", "))
}
