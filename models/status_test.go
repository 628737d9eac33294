package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyHintForwardProgress(t *testing.T) {
	next, ok := ApplyHint(StatusCreated, StatusBooked)
	require.True(t, ok)
	require.Equal(t, StatusBooked, next)

	next, ok = ApplyHint(StatusBooked, StatusInTransit)
	require.True(t, ok)
	require.Equal(t, StatusInTransit, next)

	// Skipping intermediate states is still forward progress.
	next, ok = ApplyHint(StatusBooked, StatusDelivered)
	require.True(t, ok)
	require.Equal(t, StatusDelivered, next)
}

func TestApplyHintNeverRegresses(t *testing.T) {
	// A replayed BOOKED event must not pull an in-transit shipment back.
	next, ok := ApplyHint(StatusInTransit, StatusBooked)
	require.False(t, ok)
	require.Equal(t, StatusInTransit, next)

	next, ok = ApplyHint(StatusDelivered, StatusOutForDelivery)
	require.False(t, ok)
	require.Equal(t, StatusDelivered, next)
}

func TestApplyHintSameStatusIsNoop(t *testing.T) {
	next, ok := ApplyHint(StatusAtPort, StatusAtPort)
	require.False(t, ok)
	require.Equal(t, StatusAtPort, next)
}

func TestApplyHintAbsorbingBranches(t *testing.T) {
	next, ok := ApplyHint(StatusInTransit, StatusCancelled)
	require.True(t, ok)
	require.Equal(t, StatusCancelled, next)

	next, ok = ApplyHint(StatusCustomsHold, StatusException)
	require.True(t, ok)
	require.Equal(t, StatusException, next)

	// Terminal states accept nothing further, not even EXCEPTION.
	next, ok = ApplyHint(StatusDelivered, StatusException)
	require.False(t, ok)
	require.Equal(t, StatusDelivered, next)

	next, ok = ApplyHint(StatusCancelled, StatusInTransit)
	require.False(t, ok)
	require.Equal(t, StatusCancelled, next)
}

func TestApplyHintExceptionResumes(t *testing.T) {
	// An EXCEPTION shipment can resume its lifecycle on the next hint.
	next, ok := ApplyHint(StatusException, StatusInTransit)
	require.True(t, ok)
	require.Equal(t, StatusInTransit, next)
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusCustomsCleared.Valid())
	require.False(t, ShipmentStatus("TELEPORTED").Valid())
}

func TestEventKindValid(t *testing.T) {
	require.True(t, EventDepartedPort.Valid())
	require.True(t, EventExceptionNote.Valid())
	require.False(t, EventKind("LOST_AT_SEA").Valid())
}

func TestLegAndContainerEnums(t *testing.T) {
	require.True(t, LegDelayed.Valid())
	require.False(t, LegStatus("DRIFTING").Valid())
	require.True(t, ContainerReefer.Valid())
	require.False(t, ContainerType("FLAT_RACK").Valid())
}
