package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyRisk(t *testing.T) {
	day := func(d int) *time.Time {
		ts := time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
		return &ts
	}

	// No current-leg ETA yet: nothing to compare against.
	require.Equal(t, RiskUnknown, ClassifyRisk(day(10), nil))
	require.Equal(t, RiskUnknown, ClassifyRisk(nil, nil))

	// Leg ETA past the committed final ETA.
	require.Equal(t, RiskAtRisk, ClassifyRisk(day(10), day(12)))

	// Leg ETA at or before the final ETA.
	require.Equal(t, RiskOnTrack, ClassifyRisk(day(10), day(8)))
	require.Equal(t, RiskOnTrack, ClassifyRisk(day(10), day(10)))

	// No committed final ETA: a leg ETA alone is never late.
	require.Equal(t, RiskOnTrack, ClassifyRisk(nil, day(12)))
}
