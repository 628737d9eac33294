package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentLeg(t *testing.T) {
	// Highest leg_no is current, whatever order the legs arrive in.
	legs := []ShipmentLeg{
		{ID: 31, LegNo: 1, Mode: "TRUCK", Status: LegArrived},
		{ID: 33, LegNo: 3, Mode: "TRUCK", Status: LegPending},
		{ID: 32, LegNo: 2, Mode: "OCEAN", Status: LegDeparted},
	}
	cur := CurrentLeg(legs)
	require.NotNil(t, cur)
	require.Equal(t, 3, cur.LegNo)

	// A leg with no activity yet still counts: the rule is positional.
	require.Equal(t, LegPending, cur.Status)

	require.Nil(t, CurrentLeg(nil))
}
