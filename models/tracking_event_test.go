package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPayloadString(t *testing.T) {
	p := Payload{"reason": "port congestion", "hours": 36.0}
	require.Equal(t, "port congestion", p.String("reason"))
	require.Equal(t, "", p.String("hours")) // not a string
	require.Equal(t, "", p.String("missing"))

	var nilPayload Payload
	require.Equal(t, "", nilPayload.String("reason"))
}

func TestLatestOf(t *testing.T) {
	at := func(d int) time.Time {
		return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
	}

	// The latest occurred_at wins regardless of insertion order.
	events := []*TrackingEvent{
		{ID: 1, Event: EventCreated, OccurredAt: at(1)},
		{ID: 3, Event: EventDepartedPort, OccurredAt: at(3)},
		{ID: 2, Event: EventBooked, OccurredAt: at(2)},
	}
	latest := LatestOf(events)
	require.NotNil(t, latest)
	require.Equal(t, EventDepartedPort, latest.Event)

	// Two events at the same instant: the higher event_id wins.
	events = []*TrackingEvent{
		{ID: 5, Event: EventArrivedPort, OccurredAt: at(4)},
		{ID: 6, Event: EventDischarged, OccurredAt: at(4)},
	}
	require.Equal(t, EventDischarged, LatestOf(events).Event)

	require.Nil(t, LatestOf(nil))
}

func TestPayloadMarshal(t *testing.T) {
	var nilPayload Payload
	b, err := nilPayload.Marshal()
	require.NoError(t, err)
	require.Nil(t, b) // stored as SQL NULL, not "null"

	p := Payload{"eta": "2026-03-12T08:00:00Z", "source": "carrier-feed"}
	b, err = p.Marshal()
	require.NoError(t, err)

	var back Payload
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, p, back)
}
